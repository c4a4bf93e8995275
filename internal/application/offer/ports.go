package offer

import "github.com/oferty-pro/ofertownik/internal/domain/entity"

// TextGenerator port renderera tekstowego. Implementacja nie może mutować migawki.
type TextGenerator interface {
	Generate(snapshot *entity.OfferSnapshot) ([]byte, error)
}

// PDFGenerator port renderera PDF. Brak czcionki z polskimi znakami nie jest
// błędem — implementacja degraduje się do czcionki wbudowanej.
type PDFGenerator interface {
	Generate(snapshot *entity.OfferSnapshot) ([]byte, error)
}

// LoadReport podsumowanie wczytanej oferty. Warning to ostrzeżenie nieblokujące
// (np. plik bez pozycji) — operacja mimo niego kończy się powodzeniem.
type LoadReport struct {
	RecipientName  string
	RecipientAdded bool
	ItemCount      int
	OfferDate      string
	Warning        string
}
