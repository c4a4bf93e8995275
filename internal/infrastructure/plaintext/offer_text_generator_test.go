package plaintext_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/infrastructure/plaintext"
)

func snapshotFixture() *entity.OfferSnapshot {
	q := decimal.NewFromInt(2)
	p := decimal.RequireFromString("10.5")
	return &entity.OfferSnapshot{
		Date: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Company: entity.Company{
			Name: "Acme Sp. z o.o.",
			NIP:  "123-456-78-90",
		},
		Recipient: entity.Recipient{
			Name: "Gęś i Jaźń Sp. j.",
			City: "Łódź",
		},
		Items: []entity.OfferLineItem{
			{Name: "Widget", Quantity: q, UnitPrice: p, Total: q.Mul(p)},
		},
		Total: q.Mul(p),
	}
}

func TestGenerate_UkladRaportu(t *testing.T) {
	g := plaintext.NewOfferTextGenerator("PLN", 30)
	data, err := g.Generate(snapshotFixture())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, "OFERTA\n")
	assert.Contains(t, out, "Data: 15.01.2024")
	assert.Contains(t, out, "Oferta ważna do: 14.02.2024")

	assert.Contains(t, out, "SPRZEDAWCA:")
	assert.Contains(t, out, "Nazwa: Acme Sp. z o.o.")
	assert.Contains(t, out, "NIP: 123-456-78-90")

	assert.Contains(t, out, "ODBIORCA:")
	assert.Contains(t, out, "Nazwa: Gęś i Jaźń Sp. j.")
	assert.Contains(t, out, "Miasto: Łódź")
}

func TestGenerate_PomijaPustePola(t *testing.T) {
	g := plaintext.NewOfferTextGenerator("PLN", 30)
	data, err := g.Generate(snapshotFixture())
	require.NoError(t, err)
	out := string(data)

	// Adres i telefon są puste w fixture — nie ma ich w raporcie wcale.
	assert.NotContains(t, out, "Adres:")
	assert.NotContains(t, out, "Telefon:")
}

func TestGenerate_WierszSumy(t *testing.T) {
	g := plaintext.NewOfferTextGenerator("PLN", 30)
	data, err := g.Generate(snapshotFixture())
	require.NoError(t, err)

	var sumLine string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "SUMA:") {
			sumLine = line
			break
		}
	}
	require.NotEmpty(t, sumLine, "raport musi zawierać wiersz sumy")
	assert.True(t, strings.HasSuffix(sumLine, "21.00 PLN"),
		"wiersz sumy %q musi kończyć się kwotą z walutą", sumLine)
}

func TestGenerate_DlugaNazwaJestPrzycinana(t *testing.T) {
	snap := snapshotFixture()
	longName := strings.Repeat("Bardzo Długa Nazwa ", 4) // 76 znaków
	snap.Items[0].Name = longName

	g := plaintext.NewOfferTextGenerator("PLN", 30)
	data, err := g.Generate(snap)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, longName, "pełna nazwa nie mieści się w kolumnie")
	assert.Contains(t, out, string([]rune(longName)[:40]))
}

// Polskie litery to wielobajtowe sekwencje UTF-8 — wyrównanie kolumn musi
// liczyć znaki, nie bajty.
func TestGenerate_WyrownanieKolumnZPolskimiZnakami(t *testing.T) {
	snap := snapshotFixture()
	snap.Items = []entity.OfferLineItem{
		{Name: "Śruba żółta", Quantity: decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(5)},
		{Name: "Nakretka", Quantity: decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(5)},
	}
	snap.Total = decimal.NewFromInt(10)

	g := plaintext.NewOfferTextGenerator("PLN", 30)
	data, err := g.Generate(snap)
	require.NoError(t, err)

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 ") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 2)
	assert.Equal(t,
		len([]rune(rows[0])), len([]rune(rows[1])),
		"wiersze tabeli mają tę samą szerokość w znakach niezależnie od diakrytyków")
}
