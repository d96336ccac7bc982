// Package warehouse holds sample destination shapes used by the example
// tests.
package warehouse

import "time"

// Contact mirrors store.Customer minus the credential member.
type Contact struct {
	ID         int64
	Email      string
	FullName   string
	SignedUpAt time.Time
}

// Shipment is the flattened destination of store.Order.
type Shipment struct {
	ID         int64
	TotalCents int64
	City       string
	Country    string
}
