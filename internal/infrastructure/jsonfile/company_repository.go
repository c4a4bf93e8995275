package jsonfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
)

// Statyczna kontrola: CompanyRepo implementuje repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo adapter trwałości profilu firmy na pliku JSON.
type CompanyRepo struct {
	path string
}

// NewCompanyRepository buduje adapter dla wskazanego pliku (np. company_data.json).
func NewCompanyRepository(path string) *CompanyRepo {
	return &CompanyRepo{path: path}
}

// Load wczytuje profil firmy. Brak pliku daje pusty profil bez błędu;
// uszkodzony JSON to domain.ErrFormat, problem z odczytem — domain.ErrIO.
func (r *CompanyRepo) Load() (*entity.Company, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return &entity.Company{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: odczyt %s: %v", domain.ErrIO, r.path, err)
	}
	var c entity.Company
	if err := decodeFixed(data, &c); err != nil {
		return nil, fmt.Errorf("profil firmy %s: %w", r.path, err)
	}
	return &c, nil
}

// Save zapisuje cały profil jednym dokumentem JSON.
func (r *CompanyRepo) Save(company *entity.Company) error {
	return writeJSON(r.path, company)
}
