package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFilter_Validate(t *testing.T) {
	defaultPage := domain.Page{Limit: domain.DefaultPageLimit}

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		wantError string
	}{
		{
			name:   "default page, no statuses: ok",
			filter: domain.OrderFilter{Page: defaultPage},
		},
		{
			name: "known statuses: ok",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusCancelled},
				Page:     defaultPage,
			},
		},
		{
			name: "unknown status: fail",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{"shipped"},
				Page:     defaultPage,
			},
			wantError: `Invalid order status: "shipped"`,
		},
		{
			name:      "zero limit: fail",
			filter:    domain.OrderFilter{Page: domain.Page{Limit: 0}},
			wantError: "page: limit must be between 1 and 500",
		},
		{
			name:      "limit above max: fail",
			filter:    domain.OrderFilter{Page: domain.Page{Limit: domain.MaxPageLimit + 1}},
			wantError: "page: limit must be between 1 and 500",
		},
		{
			name:      "negative offset: fail",
			filter:    domain.OrderFilter{Page: domain.Page{Limit: 10, Offset: -1}},
			wantError: "page: offset must not be negative",
		},
		{
			name:   "max offset: ok",
			filter: domain.OrderFilter{Page: domain.Page{Limit: 10, Offset: domain.MaxPageOffset}},
		},
		{
			name:      "offset above int4: fail",
			filter:    domain.OrderFilter{Page: domain.Page{Limit: 10, Offset: 1 << 32}},
			wantError: "page: offset cannot exceed 2147483647",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}
