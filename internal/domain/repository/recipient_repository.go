package repository

import "github.com/oferty-pro/ofertownik/internal/domain/entity"

// RecipientRepository definiuje port trwałości kartoteki odbiorców (DIP).
type RecipientRepository interface {
	// Load wczytuje całą kartotekę; brak pliku daje pustą listę.
	Load() ([]entity.Recipient, error)
	// Save zapisuje całą kartotekę jako tablicę JSON.
	Save(recipients []entity.Recipient) error
}
