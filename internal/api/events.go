package api

import (
	"io"                     // Streaming writer
	"maloga/internal/events" // Change notification signals

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// EventsHandler streams table-change signals to the client as
// server-sent events. Each event names the collection that changed;
// the client's only obligation is to re-read it. Signals carry no row
// data, so losing or duplicating one is harmless.
func EventsHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()         // Ends when the client disconnects
		sub := events.Subscribe(ctx, rdb)  // Open the pub/sub subscription
		defer sub.Close()                  // Release the subscription on exit
		ch := sub.Channel()                // Message channel
		c.Writer.Header().Set("Cache-Control", "no-cache") // SSE responses must not be cached
		// Forward each signal until the client goes away
		c.Stream(func(w io.Writer) bool {
			select {
			case msg, ok := <-ch:
				if !ok {
					return false // Subscription closed
				}
				c.SSEvent("change", gin.H{"table": msg.Payload}) // Emit the invalidation signal
				return true // Keep the stream open
			case <-ctx.Done():
				return false // Client disconnected
			}
		})
	}
}
