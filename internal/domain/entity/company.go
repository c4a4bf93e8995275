package entity

// Company stałe dane firmy (sprzedawcy). Profil jest pojedynczym rekordem:
// wczytywany przy starcie, zapisywany w całości przy jawnym zapisie.
// Wszystkie pola są opcjonalne — renderery pomijają puste wartości.
type Company struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	NIP         string `json:"nip"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account"`
}
