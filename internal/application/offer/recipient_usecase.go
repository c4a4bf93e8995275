package offer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
	"github.com/oferty-pro/ofertownik/pkg/logger"
	"github.com/oferty-pro/ofertownik/pkg/textnorm"
)

// RecipientUseCase trzyma kartotekę odbiorców w pamięci i zapisuje ją do pliku
// synchronicznie przy każdej mutacji — stan na dysku nigdy nie jest starszy niż
// stan w pamięci po udanej operacji. Nazwa odbiorcy jest kluczem kartoteki.
type RecipientUseCase struct {
	repo   repository.RecipientRepository
	log    *logger.Logger
	roster []entity.Recipient
}

// NewRecipientUseCase buduje przypadek użycia z portem trwałości.
func NewRecipientUseCase(repo repository.RecipientRepository, log *logger.Logger) *RecipientUseCase {
	return &RecipientUseCase{repo: repo, log: log}
}

// Load wczytuje kartotekę z pliku i nadaje identyfikatory zastępcze wpisom,
// które ich nie mają (plik ich nie przechowuje). Błąd zachowuje stary stan.
func (uc *RecipientUseCase) Load() error {
	list, err := uc.repo.Load()
	if err != nil {
		uc.log.Warn().Err(err).Msg("nie udało się wczytać kartoteki odbiorców")
		return err
	}
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.New().String()
		}
	}
	uc.roster = list
	return nil
}

// List zwraca kopię kartoteki w kolejności dodawania.
func (uc *RecipientUseCase) List() []entity.Recipient {
	out := make([]entity.Recipient, len(uc.roster))
	copy(out, uc.roster)
	return out
}

// GetByName znajduje odbiorcę po nazwie.
func (uc *RecipientUseCase) GetByName(name string) (*entity.Recipient, error) {
	for i := range uc.roster {
		if uc.roster[i].Name == name {
			r := uc.roster[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%w: odbiorca %q", domain.ErrNotFound, name)
}

// Add dodaje odbiorcę. Nazwa jest wymagana; istniejąca nazwa oznacza
// nadpisanie wpisu w miejscu (wygrywa ostatni zapis). Kartoteka trafia na dysk
// przed potwierdzeniem operacji.
func (uc *RecipientUseCase) Add(in entity.Recipient) error {
	in = normalizeRecipient(in)
	if in.Name == "" {
		return fmt.Errorf("%w: nazwa odbiorcy jest wymagana", domain.ErrValidation)
	}

	next := uc.List()
	replaced := false
	for i := range next {
		if next[i].Name == in.Name {
			in.ID = next[i].ID
			next[i] = in
			replaced = true
			break
		}
	}
	if !replaced {
		in.ID = uuid.New().String()
		next = append(next, in)
	}

	if err := uc.repo.Save(next); err != nil {
		uc.log.Error().Err(err).Msg("nie udało się zapisać kartoteki odbiorców")
		return err
	}
	uc.roster = next
	uc.log.Info().Str("odbiorca", in.Name).Bool("nadpisany", replaced).Msg("dodano odbiorcę")
	return nil
}

// UpdateByName aktualizuje pola odbiorcy wskazanego nazwą. Nazwa w danych
// wejściowych zastępuje dotychczasową dopiero po normalizacji kodowania.
func (uc *RecipientUseCase) UpdateByName(name string, in entity.Recipient) error {
	in = normalizeRecipient(in)
	if in.Name == "" {
		return fmt.Errorf("%w: nazwa odbiorcy jest wymagana", domain.ErrValidation)
	}

	next := uc.List()
	for i := range next {
		if next[i].Name != name {
			continue
		}
		in.ID = next[i].ID
		next[i] = in
		if err := uc.repo.Save(next); err != nil {
			uc.log.Error().Err(err).Msg("nie udało się zapisać kartoteki odbiorców")
			return err
		}
		uc.roster = next
		uc.log.Info().Str("odbiorca", in.Name).Msg("zaktualizowano odbiorcę")
		return nil
	}
	return fmt.Errorf("%w: odbiorca %q", domain.ErrNotFound, name)
}

// DeleteByName usuwa odbiorcę wskazanego nazwą.
func (uc *RecipientUseCase) DeleteByName(name string) error {
	next := make([]entity.Recipient, 0, len(uc.roster))
	found := false
	for _, r := range uc.roster {
		if r.Name == name {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return fmt.Errorf("%w: odbiorca %q", domain.ErrNotFound, name)
	}
	if err := uc.repo.Save(next); err != nil {
		uc.log.Error().Err(err).Msg("nie udało się zapisać kartoteki odbiorców")
		return err
	}
	uc.roster = next
	uc.log.Info().Str("odbiorca", name).Msg("usunięto odbiorcę")
	return nil
}

// upsertFromOffer nanosi odbiorcę z wczytanej oferty: wpis o tej samej nazwie
// jest nadpisywany w miejscu (bez zapisu pliku), nowy — dopisywany na koniec
// z zapisem kartoteki. Zwraca informację, czy wpis został dopisany.
func (uc *RecipientUseCase) upsertFromOffer(in entity.Recipient) (bool, error) {
	for i := range uc.roster {
		if uc.roster[i].Name == in.Name {
			in.ID = uc.roster[i].ID
			uc.roster[i] = in
			return false, nil
		}
	}
	in.ID = uuid.New().String()
	next := append(uc.List(), in)
	if err := uc.repo.Save(next); err != nil {
		uc.log.Error().Err(err).Msg("nie udało się zapisać kartoteki odbiorców")
		return false, err
	}
	uc.roster = next
	return true, nil
}

func normalizeRecipient(r entity.Recipient) entity.Recipient {
	r.Name = textnorm.Normalize(r.Name)
	r.Address = textnorm.Normalize(r.Address)
	r.City = textnorm.Normalize(r.City)
	r.PostalCode = textnorm.Normalize(r.PostalCode)
	r.NIP = textnorm.Normalize(r.NIP)
	r.Phone = textnorm.Normalize(r.Phone)
	r.Email = textnorm.Normalize(r.Email)
	return r
}
