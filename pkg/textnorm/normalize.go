// Package textnorm naprawia tekst uszkodzony przez niezgodność stron kodowych
// (typowo: bajty Windows-1250 odczytane jako Latin-1/UTF-8). Funkcje są czyste
// i idempotentne — poprawny tekst przechodzi bez zmian, a nieudana naprawa
// zwraca oryginał zamiast błędu.
package textnorm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// polishLetters — polskie litery diakrytyczne. Kandydat dekodowania jest
// akceptowany tylko, gdy zawiera przynajmniej jedną z nich: samo czyste
// dekodowanie nie dowodzi, że wybrano właściwą stronę kodową.
const polishLetters = "ąćęłńóśźżĄĆĘŁŃÓŚŹŻ"

// candidates — strony kodowe próbowane przy naprawie, w tej kolejności.
// Windows-1250 jest typowy dla polskich systemów, ISO-8859-2 to wariant ISO,
// Windows-1252 domyka rodzinę Windows (test diakrytyków i tak odrzuci błędny
// wybór, bo 1252 nie zawiera ą/ę/ś/ź).
var candidates = []*charmap.Charmap{
	charmap.Windows1250,
	charmap.ISO8859_2,
	charmap.Windows1252,
}

// Normalize zwraca tekst w poprawnym Unicode. Tekst bez śladów uszkodzenia
// wraca bez zmian (szybka ścieżka). W przeciwnym razie bajty są odzyskiwane
// jak przy Latin-1 (znaki powyżej 0xFF są pomijane) i reinterpretowane
// kolejnymi stronami kodowymi; wygrywa pierwsze dekodowanie bez znaczników
// uszkodzenia, zawierające polski znak diakrytyczny. Gdy żadne nie przejdzie,
// wraca oryginał.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	if utf8.ValidString(s) && !hasCorruptionMarker(s) {
		return s
	}

	raw := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			raw = append(raw, byte(r))
		}
	}

	for _, cm := range candidates {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		fixed := string(decoded)
		if hasCorruptionMarker(fixed) {
			continue
		}
		if !strings.ContainsAny(fixed, polishLetters) {
			continue
		}
		return fixed
	}
	return s
}

// hasCorruptionMarker wykrywa ślady błędnego dekodowania: znak zastępczy
// U+FFFD, "złamany kwadrat" U+25A0 oraz znaki sterujące C1 (U+0080–U+009F) —
// to one zostają po odczytaniu bajtów Windows-1250 jako Latin-1 (ś→U+009C itd.).
func hasCorruptionMarker(s string) bool {
	for _, r := range s {
		switch {
		case r == '�' || r == '■':
			return true
		case r >= 0x80 && r <= 0x9F:
			return true
		}
	}
	return false
}

// FixDeep stosuje Normalize do każdego tekstowego liścia drzewa złożonego
// z map, sekwencji i wartości skalarnych (kształt wczytanego dokumentu JSON).
// Struktura drzewa i wartości nietekstowe pozostają nietknięte.
func FixDeep(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = FixDeep(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = FixDeep(val)
		}
		return out
	case string:
		return Normalize(t)
	default:
		return v
	}
}
