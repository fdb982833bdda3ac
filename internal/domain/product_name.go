package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxProductNameLength = 255

type ProductName struct {
	value string
}

// NewProductName trims and NFC-normalizes raw, so the length limit counts
// composed characters rather than bytes or combining marks.
func NewProductName(raw string) (ProductName, error) {
	trimmed := norm.NFC.String(strings.TrimSpace(raw))

	if trimmed == "" {
		return ProductName{}, validationErrorf("Product name cannot be empty.")
	}

	if utf8.RuneCountInString(trimmed) > maxProductNameLength {
		return ProductName{}, validationErrorf("Product name cannot exceed %d characters.", maxProductNameLength)
	}

	return ProductName{value: trimmed}, nil
}

func (n ProductName) String() string {
	return n.value
}

func (n ProductName) Equals(other ProductName) bool {
	return n.value == other.value
}
