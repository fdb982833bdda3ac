package domain_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/currency"
)

func randomCurrency() string {
	for {
		// tag is not a recognized currency
		unit, err := currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			return unit.String()
		}
	}
}
