// Package store holds sample source shapes used by the example tests.
package store

import "time"

// Customer is a source shape with one member (APIToken) that must never
// reach the destination side.
type Customer struct {
	ID         int64
	Email      string
	FullName   string
	APIToken   string
	SignedUpAt time.Time
}

// Order is a source shape with a nested Address, exercising the flattening
// pattern.
type Order struct {
	ID         int64
	TotalCents int64
	Address    Address
}

// Address is the nested part of Order.
type Address struct {
	City    string
	Country string
}
