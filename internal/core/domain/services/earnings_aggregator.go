package services

import (
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
)

// EarningsAggregator is a domain service that sums a driver's earnings over
// a set of orders.
//
// The aggregation is a pure fold: orders are filtered by a status set and a
// half-open time window on creation time, then their total amounts are
// summed exactly. No rounding happens here; presentation truncates to two
// decimal places at the boundary.
type EarningsAggregator struct{}

// NewEarningsAggregator creates a new EarningsAggregator instance.
func NewEarningsAggregator() EarningsAggregator {
	return EarningsAggregator{}
}

// EarningsReport is the result of an aggregation: the exact total and the
// number of orders that contributed to it.
type EarningsReport struct {
	Total kernel.Money
	Count int
}

// Earnings sums total amounts of the orders whose status is in the given
// set and whose creation time falls within the window. Returns an error
// only when the window or an order fails construction validation.
func (a EarningsAggregator) Earnings(orders []*order.Order, statuses []order.Status, window kernel.TimeRange) (EarningsReport, error) {
	if err := window.Validate(); err != nil {
		return EarningsReport{}, err
	}

	included := make(map[order.Status]bool, len(statuses))
	for _, s := range statuses {
		included[s] = true
	}

	report := EarningsReport{Total: kernel.ZeroMoney()}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return EarningsReport{}, err
		}
		if !included[o.Status()] {
			continue
		}
		if !window.Contains(o.CreatedAt()) {
			continue
		}

		report.Total = report.Total.Add(o.TotalAmount())
		report.Count++
	}

	return report, nil
}
