package offer

import (
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
	"github.com/oferty-pro/ofertownik/pkg/logger"
	"github.com/oferty-pro/ofertownik/pkg/textnorm"
)

// CompanyUseCase trzyma profil firmy w pamięci i synchronizuje go z plikiem.
// Nieudany odczyt lub zapis nigdy nie zmienia stanu w pamięci.
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	log     *logger.Logger
	profile entity.Company
}

// NewCompanyUseCase buduje przypadek użycia z portem trwałości.
func NewCompanyUseCase(repo repository.CompanyRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, log: log}
}

// Load wczytuje profil z pliku. Brak pliku daje pusty profil; błąd odczytu
// lub formatu jest zwracany, a dotychczasowy profil zostaje zachowany.
func (uc *CompanyUseCase) Load() error {
	c, err := uc.repo.Load()
	if err != nil {
		uc.log.Warn().Err(err).Msg("nie udało się wczytać danych firmy")
		return err
	}
	uc.profile = *c
	return nil
}

// Profile zwraca kopię bieżącego profilu.
func (uc *CompanyUseCase) Profile() entity.Company {
	return uc.profile
}

// Save normalizuje kodowanie każdego pola i zapisuje cały profil.
// Stan w pamięci zmienia się dopiero po udanym zapisie.
func (uc *CompanyUseCase) Save(in entity.Company) error {
	normalized := normalizeCompany(in)
	if err := uc.repo.Save(&normalized); err != nil {
		uc.log.Error().Err(err).Msg("nie udało się zapisać danych firmy")
		return err
	}
	uc.profile = normalized
	uc.log.Info().Str("firma", normalized.Name).Msg("zapisano dane firmy")
	return nil
}

// MergeFromOffer nanosi na profil wyłącznie niepuste pola z wczytanej oferty —
// puste wartości w pliku nigdy nie kasują istniejących danych. Zmiana dotyczy
// tylko pamięci; plik profilu nie jest przy tym nadpisywany.
func (uc *CompanyUseCase) MergeFromOffer(c *entity.Company) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&uc.profile.Name, c.Name)
	merge(&uc.profile.Address, c.Address)
	merge(&uc.profile.City, c.City)
	merge(&uc.profile.PostalCode, c.PostalCode)
	merge(&uc.profile.NIP, c.NIP)
	merge(&uc.profile.Phone, c.Phone)
	merge(&uc.profile.Email, c.Email)
	merge(&uc.profile.BankAccount, c.BankAccount)
}

func normalizeCompany(c entity.Company) entity.Company {
	c.Name = textnorm.Normalize(c.Name)
	c.Address = textnorm.Normalize(c.Address)
	c.City = textnorm.Normalize(c.City)
	c.PostalCode = textnorm.Normalize(c.PostalCode)
	c.NIP = textnorm.Normalize(c.NIP)
	c.Phone = textnorm.Normalize(c.Phone)
	c.Email = textnorm.Normalize(c.Email)
	c.BankAccount = textnorm.Normalize(c.BankAccount)
	return c
}
