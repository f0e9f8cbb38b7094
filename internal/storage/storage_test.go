package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPathShape(t *testing.T) {
	p := ObjectPath(7, "my cow photo.JPG")
	assert.True(t, strings.HasPrefix(p, "7/"), "path %q must live under the user prefix", p)
	assert.True(t, strings.HasSuffix(p, ".JPG"), "path %q must keep the extension", p)
	// The original filename must not leak into the stored name.
	assert.NotContains(t, p, "my cow photo")
}

func TestObjectPathIsRandomized(t *testing.T) {
	a := ObjectPath(7, "a.png")
	b := ObjectPath(7, "a.png")
	assert.NotEqual(t, a, b)
}

func TestObjectPathNoExtension(t *testing.T) {
	p := ObjectPath(3, "raw")
	assert.True(t, strings.HasPrefix(p, "3/"))
	assert.NotContains(t, p, ".")
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/uploads/7/x.jpg", PublicURL("http://localhost:8080", "7/x.jpg"))
}
