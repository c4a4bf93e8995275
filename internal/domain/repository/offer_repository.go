package repository

import "github.com/oferty-pro/ofertownik/internal/domain/entity"

// OfferRepository definiuje port zapisu i odczytu oferty w formacie JSON —
// jedynym formacie eksportu, który da się wczytać z powrotem.
type OfferRepository interface {
	// Save zapisuje migawkę oferty pod wskazaną ścieżką.
	Save(path string, snapshot *entity.OfferSnapshot) error
	// Load wczytuje dokument oferty; zły kształt pliku to domain.ErrFormat.
	Load(path string) (*entity.OfferDocument, error)
}
