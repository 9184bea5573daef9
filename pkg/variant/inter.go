package variant

import "time"

type ValueProvider[A any] interface {
	// Value returns the successful payload
	Value() A
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithLabel defines an interface for types that expose their active slot
type WithLabel[A any] interface {
	ValueProvider[A]
	// Label returns the active label
	Label() Label
	// IsSuccess returns true if the success slot is active
	IsSuccess() bool
}

// WithPayload extends WithLabel with access to the failure payload
type WithPayload[A any] interface {
	WithLabel[A]
	// Payload returns the active failure payload
	Payload() any
}
