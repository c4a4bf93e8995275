package repository

import "github.com/oferty-pro/ofertownik/internal/domain/entity"

// CompanyRepository definiuje port trwałości profilu firmy (DIP).
// Implementacja żyje w infrastructure.
type CompanyRepository interface {
	// Load wczytuje profil; brak pliku nie jest błędem i daje pusty profil.
	Load() (*entity.Company, error)
	// Save zapisuje cały profil jednym dokumentem.
	Save(company *entity.Company) error
}
