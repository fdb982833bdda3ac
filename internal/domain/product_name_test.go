package domain_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductName(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantError string
	}{
		{
			name: "plain name: ok",
			raw:  "Laptop",
			want: "Laptop",
		},
		{
			name: "surrounding whitespace is trimmed: ok",
			raw:  "  Laptop Pro  ",
			want: "Laptop Pro",
		},
		{
			name: "255 characters: ok",
			raw:  strings.Repeat("a", 255),
			want: strings.Repeat("a", 255),
		},
		{
			name: "255 multibyte characters: ok",
			raw:  strings.Repeat("ж", 255),
			want: strings.Repeat("ж", 255),
		},
		{
			name: "decomposed accents count as one character: ok",
			raw:  strings.Repeat("e\u0301", 255),
			want: strings.Repeat("\u00e9", 255),
		},
		{
			name:      "256 characters: fail",
			raw:       strings.Repeat("a", 256),
			wantError: "Product name cannot exceed 255 characters.",
		},
		{
			name:      "256 multibyte characters: fail",
			raw:       strings.Repeat("ж", 256),
			wantError: "Product name cannot exceed 255 characters.",
		},
		{
			name:      "empty: fail",
			raw:       "",
			wantError: "Product name cannot be empty.",
		},
		{
			name:      "only whitespace: fail",
			raw:       " \t\n ",
			wantError: "Product name cannot be empty.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewProductName(tt.raw)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestProductName_Equals(t *testing.T) {
	a, err := domain.NewProductName(" Mouse ")
	require.NoError(t, err)
	b, err := domain.NewProductName("Mouse")
	require.NoError(t, err)
	c, err := domain.NewProductName("Keyboard")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
