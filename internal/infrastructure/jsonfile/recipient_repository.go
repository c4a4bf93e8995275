package jsonfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
)

var _ repository.RecipientRepository = (*RecipientRepo)(nil)

// RecipientRepo adapter trwałości kartoteki odbiorców na pliku JSON (tablica).
type RecipientRepo struct {
	path string
}

// NewRecipientRepository buduje adapter dla wskazanego pliku (np. recipients.json).
func NewRecipientRepository(path string) *RecipientRepo {
	return &RecipientRepo{path: path}
}

// Load wczytuje kartotekę. Brak pliku daje pustą listę bez błędu.
func (r *RecipientRepo) Load() ([]entity.Recipient, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Recipient{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: odczyt %s: %v", domain.ErrIO, r.path, err)
	}
	var list []entity.Recipient
	if err := decodeFixed(data, &list); err != nil {
		return nil, fmt.Errorf("kartoteka odbiorców %s: %w", r.path, err)
	}
	return list, nil
}

// Save zapisuje całą kartotekę. Pusta lista trafia do pliku jako [], nie null.
func (r *RecipientRepo) Save(recipients []entity.Recipient) error {
	if recipients == nil {
		recipients = []entity.Recipient{}
	}
	return writeJSON(r.path, recipients)
}
