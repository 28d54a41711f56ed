// Package services contains stateless domain services.
//
// SessionAggregator computes on-shift time as the summed overlap of work
// sessions with a half-open time window, treating open sessions as running
// until now. EarningsAggregator sums order amounts over a status set and a
// time range with exact decimal arithmetic. Both are pure folds over
// already-fetched aggregates; repositories fetch, services compute.
package services
