// Package pdf implementuje graficzną wersję oferty (Maroto v2).
//
// Układ strony A4:
//
//	┌─────────────────────────────────────────────┐
//	│                   OFERTA                    │
//	│  Data / Oferta ważna do                     │
//	│  ─────────────────────────────────────────  │
//	│  SPRZEDAWCA:          │  ODBIORCA:          │
//	│  pola profilu firmy   │  pola odbiorcy      │
//	│  ─────────────────────────────────────────  │
//	│  TABELA: Lp | Nazwa | Ilość | Cena | Wartość│
//	│  wiersz sumy                                │
//	└─────────────────────────────────────────────┘
//
// Cały tekst przechodzi przez komponenty tekstowe Maroto, a przed renderem
// rejestrowana jest czcionka z pokryciem polskich znaków (patrz fonts.go).
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	domoffer "github.com/oferty-pro/ofertownik/internal/domain/offer"
)

// ── Paleta kolorów ────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 44, Green: 62, Blue: 80}    // #2c3e50
	colorHeader  = &props.Color{Red: 52, Green: 73, Blue: 94}    // #34495e
	colorTotal   = &props.Color{Red: 236, Green: 240, Blue: 241} // #ecf0f1
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Config parametry renderera PDF.
type Config struct {
	Currency     string
	ValidityDays int
	FontDirs     []string // dodatkowe katalogi przeszukiwane za czcionkami
}

// OfferPDFGenerator renderuje migawkę oferty do dokumentu PDF.
type OfferPDFGenerator struct {
	cfg Config
}

// NewOfferPDFGenerator buduje generator.
func NewOfferPDFGenerator(cfg Config) *OfferPDFGenerator {
	return &OfferPDFGenerator{cfg: cfg}
}

// Generate generuje PDF i zwraca jego bajty. Migawka nie jest mutowana.
func (g *OfferPDFGenerator) Generate(snap *entity.OfferSnapshot) ([]byte, error) {
	family, customFonts := discoverFonts(g.cfg.FontDirs)

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(20).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: family, Size: 10}).
		WithTitle("Oferta", true)
	if len(customFonts) > 0 {
		builder = builder.WithCustomFonts(customFonts)
	}

	m := maroto.New(builder.Build())

	m.AddRows(titleRow())
	m.AddRows(dateRows(snap, g.cfg.ValidityDays)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(partiesRows(snap.Company, snap.Recipient)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(snap.Items, g.cfg.Currency) {
		m.AddRows(r)
	}
	m.AddRows(totalRow(snap, g.cfg.Currency))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generowanie dokumentu: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sekcje ────────────────────────────────────────────────────────────────────

// titleRow: wyśrodkowany tytuł dokumentu.
func titleRow() core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("OFERTA", props.Text{
				Style: fontstyle.Bold, Size: 24, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// dateRows: data wystawienia i termin ważności.
func dateRows(snap *entity.OfferSnapshot, validityDays int) []core.Row {
	validUntil := snap.Date.AddDate(0, 0, validityDays)
	return []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("Data: "+snap.Date.Format("02.01.2006"), props.Text{Size: 10}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Oferta ważna do: "+validUntil.Format("02.01.2006"), props.Text{Size: 10}),
		)),
	}
}

// partiesRows: sprzedawca i odbiorca obok siebie; krótszy blok jest dopełniany
// pustymi akapitami, żeby tabela pozostała prostokątna.
func partiesRows(company entity.Company, recipient entity.Recipient) []core.Row {
	left := partyLines(companyFields(company))
	right := partyLines(recipientFields(recipient))
	for len(left) < len(right) {
		left = append(left, "")
	}
	for len(right) < len(left) {
		right = append(right, "")
	}

	rows := []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("SPRZEDAWCA:", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			})),
			col.New(6).Add(text.New("ODBIORCA:", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			})),
		),
	}
	for i := range left {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(left[i], props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(right[i], props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

type field struct {
	label string
	value string
}

// partyLines renderuje tylko niepuste pola jako wiersze "Etykieta: wartość".
func partyLines(fields []field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			out = append(out, f.label+" "+f.value)
		}
	}
	return out
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

// itemsHeaderRow: nagłówek tabeli pozycji z ciemnym tłem i białym tekstem.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(9).WithStyle(&props.Cell{BackgroundColor: colorHeader}).Add(
		h("Lp", 1, align.Center),
		h("Nazwa", 6, align.Left),
		h("Ilość", 1, align.Right),
		h("Cena jedn.", 2, align.Right),
		h("Wartość", 2, align.Right),
	)
}

// itemRows: jeden wiersz na pozycję oferty.
func itemRows(items []entity.OfferLineItem, currency string) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Name,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				domoffer.FormatAmount(it.Quantity),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				domoffer.FormatAmount(it.UnitPrice)+" "+currency,
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				domoffer.FormatAmount(it.Total)+" "+currency,
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return rows
}

// totalRow: wiersz sumy na jaśniejszym tle, domknięty wizualnie z tabelą.
func totalRow(snap *entity.OfferSnapshot, currency string) core.Row {
	return row.New(9).WithStyle(&props.Cell{BackgroundColor: colorTotal}).Add(
		col.New(8),
		col.New(2).Add(text.New("SUMA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorGray, Top: 2, Right: 1,
		})),
		col.New(2).Add(text.New(domoffer.FormatAmount(snap.Total)+" "+currency, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
