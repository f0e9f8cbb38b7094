package stats

import "maloga/internal/domain" // Importing domain models

// Totals holds the dashboard commission figures
type Totals struct {
	Total   float64 `json:"total"`   // Sum of commission amounts over all records
	Pending float64 `json:"pending"` // Sum restricted to records with pending status
}

// AggregateCommissions reduces raw commission records into the dashboard
// totals. An empty input yields zeroes; it never errors.
func AggregateCommissions(records []domain.Commission) Totals {
	var t Totals // Running totals
	for _, c := range records {
		t.Total += c.CommissionAmount // Every record counts toward the total
		if c.Status == domain.CommissionPending {
			t.Pending += c.CommissionAmount // Pending records also count toward pending
		}
	}
	return t
}

// CommissionAmount computes the fee for a sale: amount * rate / 100.
// Stored commission_amount values are expected to satisfy this but it is
// not enforced on reads.
func CommissionAmount(amount, rate float64) float64 {
	return amount * rate / 100
}
