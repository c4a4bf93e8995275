// Package offer zawiera czystą arytmetykę oferty (serwis domenowy):
// parsowanie kwot z pól tekstowych i wyliczanie wartości pozycji oraz sumy.
package offer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
)

// ParseQuantity parsuje ilość z pola tekstowego. Przecinek jest akceptowany
// jako separator dziesiętny, puste pole oznacza zero, wartość ujemna jest
// odrzucana jako błąd walidacji.
func ParseQuantity(s string) (decimal.Decimal, error) {
	q, err := parseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if q.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: ilość nie może być ujemna: %q", domain.ErrValidation, s)
	}
	return q, nil
}

// ParsePrice parsuje cenę jednostkową z pola tekstowego. Puste pole oznacza
// zero; wartości ujemne są dozwolone (rabat/korekta).
func ParsePrice(s string) (decimal.Decimal, error) {
	return parseAmount(s)
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	// Separator dziesiętny z klawiatury numerycznej bywa przecinkiem.
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: nieprawidłowa wartość liczbowa: %q", domain.ErrValidation, s)
	}
	return d, nil
}

// LineTotal wartość pozycji: ilość * cena jednostkowa.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// OfferTotal suma wartości wszystkich pozycji oferty.
func OfferTotal(items []entity.OfferLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

// FormatAmount formatuje kwotę do prezentacji — zawsze dwa miejsca po przecinku.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
