// Package plaintext buduje tekstową wersję oferty: raport o stałej szerokości
// 80 znaków, do czytania przez człowieka (nie do ponownego parsowania).
package plaintext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	domoffer "github.com/oferty-pro/ofertownik/internal/domain/offer"
)

const (
	lineWidth = 80
	nameWidth = 40
)

// OfferTextGenerator renderer tekstowy oferty.
type OfferTextGenerator struct {
	currency     string
	validityDays int
}

// NewOfferTextGenerator buduje renderer z sufiksem walutowym i terminem
// ważności oferty w dniach.
func NewOfferTextGenerator(currency string, validityDays int) *OfferTextGenerator {
	return &OfferTextGenerator{currency: currency, validityDays: validityDays}
}

// Generate renderuje migawkę do bajtów raportu (UTF-8). Migawka nie jest
// mutowana.
func (g *OfferTextGenerator) Generate(snap *entity.OfferSnapshot) ([]byte, error) {
	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString("OFERTA\n")
	b.WriteString(rule + "\n\n")

	validUntil := snap.Date.AddDate(0, 0, g.validityDays)
	fmt.Fprintf(&b, "Data: %s\n", snap.Date.Format("02.01.2006"))
	fmt.Fprintf(&b, "Oferta ważna do: %s\n\n", validUntil.Format("02.01.2006"))

	b.WriteString("SPRZEDAWCA:\n" + thin + "\n")
	writeFields(&b, companyFields(snap.Company))
	b.WriteString("\n")

	b.WriteString("ODBIORCA:\n" + thin + "\n")
	writeFields(&b, recipientFields(snap.Recipient))
	b.WriteString("\n")

	b.WriteString("POZYCJE OFERTY:\n" + thin + "\n")
	fmt.Fprintf(&b, "%s %s %s %s %s\n",
		padRight("Lp", 5),
		padRight("Nazwa", nameWidth),
		padLeft("Ilość", 10),
		padLeft("Cena", 12),
		padLeft("Wartość", 12),
	)
	b.WriteString(thin + "\n")

	for i, item := range snap.Items {
		fmt.Fprintf(&b, "%s %s %s %s %s %s %s\n",
			padRight(fmt.Sprintf("%d", i+1), 5),
			padRight(truncate(item.Name, nameWidth), nameWidth),
			padLeft(domoffer.FormatAmount(item.Quantity), 10),
			padLeft(domoffer.FormatAmount(item.UnitPrice), 12),
			g.currency,
			padLeft(domoffer.FormatAmount(item.Total), 12),
			g.currency,
		)
	}

	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%s %s %s\n",
		padRight("SUMA:", 57),
		padLeft(domoffer.FormatAmount(snap.Total), 12),
		g.currency,
	)
	b.WriteString(rule + "\n")

	return []byte(b.String()), nil
}

type field struct {
	label string
	value string
}

// writeFields wypisuje tylko niepuste pola, w stałej kolejności.
func writeFields(b *strings.Builder, fields []field) {
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(b, "%s %s\n", f.label, f.value)
		}
	}
}

func companyFields(c entity.Company) []field {
	return []field{
		{"Nazwa:", c.Name},
		{"Adres:", c.Address},
		{"Miasto:", c.City},
		{"Kod pocztowy:", c.PostalCode},
		{"NIP:", c.NIP},
		{"Telefon:", c.Phone},
		{"Email:", c.Email},
		{"Konto bankowe:", c.BankAccount},
	}
}

func recipientFields(r entity.Recipient) []field {
	return []field{
		{"Nazwa:", r.Name},
		{"Adres:", r.Address},
		{"Miasto:", r.City},
		{"Kod pocztowy:", r.PostalCode},
		{"NIP:", r.NIP},
		{"Telefon:", r.Phone},
		{"Email:", r.Email},
	}
}

// padRight / padLeft wyrównują do szerokości liczonej w znakach —
// fmt liczy bajty, co psuje kolumny przy polskich literach.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width])
}
