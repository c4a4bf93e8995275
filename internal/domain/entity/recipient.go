package entity

// Recipient odbiorca oferty. Name pełni rolę klucza w kartotece (wyszukiwanie,
// edycja i usuwanie po nazwie; duplikat nazwy nadpisuje istniejący wpis).
// ID jest identyfikatorem zastępczym nadawanym przy utworzeniu — istnieje
// tylko w pamięci i nie trafia do plików, żeby format danych się nie zmienił.
type Recipient struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	NIP        string `json:"nip"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}
