package domain

import "errors"

// Błędy domenowe (bez zależności zewnętrznych). Adaptery i przypadki użycia
// opakowują je przez fmt.Errorf z %w, dodając kontekst operacji.
var (
	ErrValidation = errors.New("błąd walidacji danych")
	ErrNotFound   = errors.New("nie znaleziono rekordu")
	ErrFormat     = errors.New("nieprawidłowy format pliku")
	ErrIO         = errors.New("błąd odczytu/zapisu pliku")
)
