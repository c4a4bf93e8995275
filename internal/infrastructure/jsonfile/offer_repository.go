package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
	"github.com/oferty-pro/ofertownik/pkg/textnorm"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo zapis i odczyt oferty w pliku JSON wskazanym przez użytkownika.
type OfferRepo struct{}

// NewOfferRepository buduje adapter ofert.
func NewOfferRepository() *OfferRepo {
	return &OfferRepo{}
}

// Save zapisuje migawkę jako dokument {date, company, recipient, items, total}.
// Rekordy firmy i odbiorcy są pełnymi kopiami z chwili eksportu.
func (r *OfferRepo) Save(path string, snapshot *entity.OfferSnapshot) error {
	items := snapshot.Items
	if items == nil {
		items = []entity.OfferLineItem{}
	}
	company := snapshot.Company
	recipient := snapshot.Recipient
	doc := entity.OfferDocument{
		Date:      snapshot.Date.Format("2006-01-02"),
		Company:   &company,
		Recipient: &recipient,
		Items:     items,
		Total:     snapshot.Total,
	}
	return writeJSON(path, &doc)
}

// Load wczytuje dokument oferty. Plik musi istnieć (to ścieżka wybrana przez
// użytkownika), a jego szczyt musi być obiektem JSON — inaczej domain.ErrFormat
// zanim cokolwiek zostanie zmienione. Tekst przechodzi przez naprawę kodowania.
func (r *OfferRepo) Load(path string) (*entity.OfferDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: odczyt %s: %v", domain.ErrIO, path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	top, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: plik oferty musi być obiektem JSON", domain.ErrFormat)
	}

	fixed, err := json.Marshal(textnorm.FixDeep(top))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	var doc entity.OfferDocument
	if err := json.Unmarshal(fixed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	return &doc, nil
}
