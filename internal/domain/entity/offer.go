package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferLineItem pozycja oferty. Total to wartość wyliczana (Quantity * UnitPrice)
// przy każdej mutacji; wczytana pozycja bez Total (lub z zerem) ma ją przeliczaną.
type OfferLineItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// OfferSnapshot migawka oferty przekazywana rendererom w momencie eksportu.
// Zawiera pełne kopie rekordów (nie referencje) — późniejsze zmiany w kartotece
// nie zmieniają już wyeksportowanego dokumentu.
type OfferSnapshot struct {
	Date      time.Time
	Company   Company
	Recipient Recipient
	Items     []OfferLineItem
	Total     decimal.Decimal
}

// OfferDocument zawartość pliku oferty JSON. Company i Items są opcjonalne;
// Recipient z niepustą nazwą jest wymagany przy wczytywaniu.
type OfferDocument struct {
	Date      string          `json:"date"`
	Company   *Company        `json:"company,omitempty"`
	Recipient *Recipient      `json:"recipient"`
	Items     []OfferLineItem `json:"items"`
	Total     decimal.Decimal `json:"total"`
}
