// Package jsonfile implementuje porty trwałości na płaskich plikach JSON
// (UTF-8, wcięcie dwóch spacji, znaki spoza ASCII zapisywane dosłownie).
// Każda operacja otwiera plik tylko na czas odczytu/zapisu.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/pkg/textnorm"
)

func init() {
	// Kwoty w plikach mają być liczbami JSON, nie napisami w cudzysłowach.
	decimal.MarshalJSONWithoutQuotes = true
}

// decodeFixed parsuje dokument JSON, przepuszcza każdy tekstowy liść przez
// naprawę kodowania i dopiero wtedy dekoduje do struktury docelowej.
func decodeFixed(data []byte, dst any) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	fixed, err := json.Marshal(textnorm.FixDeep(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	if err := json.Unmarshal(fixed, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	return nil
}

// writeJSON serializuje dokument do bufora i zapisuje plik jedną operacją,
// więc uchwyt nie zostaje otwarty na żadnej ścieżce wyjścia.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: serializacja %s: %v", domain.ErrIO, path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: zapis %s: %v", domain.ErrIO, path, err)
	}
	return nil
}
