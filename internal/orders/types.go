package orders

import (
	"errors"
	"fmt"
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// KeyPrefix starts every canonical order key.
const KeyPrefix = "ORD-"

var (
	// ErrNotFound is returned when a reference does not resolve to a record.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidRecord is returned when a record is missing fields its status requires.
	ErrInvalidRecord = errors.New("invalid order record")
)

// Record is one row of the read-only order table.
type Record struct {
	Key               string `json:"-" yaml:"-"`
	Status            Status `json:"status" yaml:"status"`
	Product           string `json:"product" yaml:"product"`
	Carrier           string `json:"carrier,omitempty" yaml:"carrier,omitempty"`
	TrackingNumber    string `json:"tracking_number,omitempty" yaml:"tracking_number,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty" yaml:"estimated_delivery,omitempty"`
	DeliveryDate      string `json:"delivery_date,omitempty" yaml:"delivery_date,omitempty"`
	ShippingAddress   string `json:"shipping_address" yaml:"shipping_address"`
}

// Validate checks that the record carries the fields its status requires.
func (r Record) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidRecord)
	}
	switch r.Status {
	case StatusShipped:
		if r.TrackingNumber == "" || r.EstimatedDelivery == "" {
			return fmt.Errorf("%w: %s is shipped but has no tracking number or estimate", ErrInvalidRecord, r.Key)
		}
	case StatusDelivered:
		if r.DeliveryDate == "" {
			return fmt.Errorf("%w: %s is delivered but has no delivery date", ErrInvalidRecord, r.Key)
		}
	case StatusProcessing:
	default:
		return fmt.Errorf("%w: %s has unknown status %q", ErrInvalidRecord, r.Key, r.Status)
	}
	return nil
}
