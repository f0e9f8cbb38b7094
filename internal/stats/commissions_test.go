package stats

import (
	"testing"

	"maloga/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAggregateCommissionsEmpty(t *testing.T) {
	totals := AggregateCommissions(nil)
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Pending)

	totals = AggregateCommissions([]domain.Commission{})
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Pending)
}

func TestAggregateCommissionsScenario(t *testing.T) {
	// One completed and one pending sale.
	records := []domain.Commission{
		{Amount: 1000, CommissionRate: 10, CommissionAmount: 100, Status: domain.CommissionCompleted},
		{Amount: 500, CommissionRate: 10, CommissionAmount: 50, Status: domain.CommissionPending},
	}
	totals := AggregateCommissions(records)
	assert.Equal(t, 150.0, totals.Total)
	assert.Equal(t, 50.0, totals.Pending)
}

func TestAggregateCommissionsPendingFilter(t *testing.T) {
	records := []domain.Commission{
		{CommissionAmount: 10, Status: domain.CommissionPending},
		{CommissionAmount: 20, Status: domain.CommissionCompleted},
		{CommissionAmount: 30, Status: "cancelled"},
		{CommissionAmount: 0, Status: domain.CommissionPending},
		{Status: domain.CommissionPending}, // zero-valued amount counts as 0
	}
	totals := AggregateCommissions(records)
	assert.Equal(t, 60.0, totals.Total)
	assert.Equal(t, 10.0, totals.Pending)
}

func TestAggregateCommissionsTotalIsSum(t *testing.T) {
	records := []domain.Commission{
		{CommissionAmount: 1.5}, {CommissionAmount: 2.5}, {CommissionAmount: 4},
	}
	var want float64
	for _, r := range records {
		want += r.CommissionAmount
	}
	assert.Equal(t, want, AggregateCommissions(records).Total)
}

func TestCommissionAmount(t *testing.T) {
	assert.Equal(t, 100.0, CommissionAmount(1000, 10))
	assert.Equal(t, 50.0, CommissionAmount(500, 10))
	assert.Zero(t, CommissionAmount(0, 10))
	assert.Zero(t, CommissionAmount(1000, 0))
}
