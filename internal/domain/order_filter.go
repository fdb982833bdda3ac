package domain

import (
	"fmt"
	"math"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
	// offsets are stored as int4 query parameters
	MaxPageOffset = math.MaxInt32
)

type Page struct {
	Limit  int
	Offset int
}

func (p Page) Validate() error {
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return validationErrorf("limit must be between 1 and %d", MaxPageLimit)
	}

	if p.Offset < 0 {
		return validationErrorf("offset must not be negative")
	}

	if p.Offset > MaxPageOffset {
		return validationErrorf("offset cannot exceed %d", MaxPageOffset)
	}

	return nil
}

// OrderFilter has OR semantics within Statuses; an empty slice matches every status.
type OrderFilter struct {
	Statuses []OrderStatus
	Page     Page
}

func (f OrderFilter) Validate() error {
	for _, status := range f.Statuses {
		if _, err := ToOrderStatus(string(status)); err != nil {
			return err
		}
	}

	if err := f.Page.Validate(); err != nil {
		return fmt.Errorf("page: %w", err)
	}

	return nil
}
