package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferty-pro/ofertownik/internal/domain/entity"
)

func snapshotFixture() *entity.OfferSnapshot {
	q := decimal.NewFromInt(2)
	p := decimal.RequireFromString("10.5")
	return &entity.OfferSnapshot{
		Date: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Company: entity.Company{
			Name: "Acme Sp. z o.o.",
			City: "Kraków",
			NIP:  "123-456-78-90",
		},
		Recipient: entity.Recipient{
			Name: "Gęś i Jaźń Sp. j.",
			City: "Łódź",
		},
		Items: []entity.OfferLineItem{
			{Name: "Śruba żółta M8", Quantity: q, UnitPrice: p, Total: q.Mul(p)},
		},
		Total: q.Mul(p),
	}
}

func TestGenerate_ZwracaDokumentPDF(t *testing.T) {
	g := NewOfferPDFGenerator(Config{Currency: "PLN", ValidityDays: 30})

	data, err := g.Generate(snapshotFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")),
		"wynik musi być dokumentem PDF, a nie np. komunikatem błędu")
}

func TestGenerate_PustaListaPozycji(t *testing.T) {
	snap := snapshotFixture()
	snap.Items = nil
	snap.Total = decimal.Zero

	g := NewOfferPDFGenerator(Config{Currency: "PLN", ValidityDays: 30})
	data, err := g.Generate(snap)
	require.NoError(t, err, "renderer nie waliduje treści — to rola warstwy aplikacji")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

// discoverFonts nigdy nie zawodzi: gdy żadnego kandydata nie da się
// zarejestrować, wraca czcionka wbudowana z pustą listą czcionek własnych.
func TestDiscoverFonts_ZawszeDajeRodzine(t *testing.T) {
	known := map[string]bool{
		"DejaVuSans":     true,
		"ArialUnicode":   true,
		"LiberationSans": true,
	}

	family, fonts := discoverFonts(nil)
	if fonts == nil {
		assert.Equal(t, builtInFamily, family)
	} else {
		assert.True(t, known[family], "znaleziona rodzina %q musi pochodzić z listy kandydatów", family)
		assert.NotEmpty(t, fonts)
	}
}

func TestDiscoverFonts_PustyKatalogNieSzkodzi(t *testing.T) {
	// Dodatkowy katalog bez czcionek nie może zepsuć poszukiwań systemowych.
	withExtra, _ := discoverFonts([]string{t.TempDir()})
	without, _ := discoverFonts(nil)
	assert.Equal(t, without, withExtra)
}
