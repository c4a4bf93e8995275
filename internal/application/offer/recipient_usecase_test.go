package offer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	appoffer "github.com/oferty-pro/ofertownik/internal/application/offer"
	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	"github.com/oferty-pro/ofertownik/internal/infrastructure/jsonfile"
	"github.com/oferty-pro/ofertownik/pkg/logger"
)

// mojibake koduje tekst do Windows-1250 i odczytuje go jak Latin-1 — tak
// wygląda typowe uszkodzenie danych wejściowych.
func mojibake(t *testing.T, s string) string {
	t.Helper()
	raw, err := charmap.Windows1250.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	var b strings.Builder
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String()
}

func newRecipientUC(t *testing.T) (*appoffer.RecipientUseCase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipients.json")
	uc := appoffer.NewRecipientUseCase(jsonfile.NewRecipientRepository(path), logger.Nop())
	require.NoError(t, uc.Load())
	return uc, path
}

func TestRecipientAdd_PustaNazwaOdrzucona(t *testing.T) {
	uc, path := newRecipientUC(t)

	err := uc.Add(entity.Recipient{City: "Kraków"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, uc.List(), "kartoteka nie może się zmienić po odrzuceniu")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "plik kartoteki nie może powstać po odrzuceniu")
}

func TestRecipientAdd_ZapisujePrzedPotwierdzeniem(t *testing.T) {
	uc, path := newRecipientUC(t)

	require.NoError(t, uc.Add(entity.Recipient{Name: "Hurtownia Alfa", City: "Poznań"}))

	got := uc.List()
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID, "wpis w pamięci dostaje identyfikator zastępczy")

	// Świeża instancja na tym samym pliku widzi już dodanego odbiorcę.
	uc2 := appoffer.NewRecipientUseCase(jsonfile.NewRecipientRepository(path), logger.Nop())
	require.NoError(t, uc2.Load())
	reloaded := uc2.List()
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Hurtownia Alfa", reloaded[0].Name)
	assert.Equal(t, "Poznań", reloaded[0].City)
}

func TestRecipientAdd_DuplikatNadpisujeWMiejscu(t *testing.T) {
	uc, _ := newRecipientUC(t)

	require.NoError(t, uc.Add(entity.Recipient{Name: "Alfa", City: "Poznań"}))
	require.NoError(t, uc.Add(entity.Recipient{Name: "Beta", City: "Gdynia"}))
	firstID := uc.List()[0].ID

	require.NoError(t, uc.Add(entity.Recipient{Name: "Alfa", City: "Wrocław"}))

	got := uc.List()
	require.Len(t, got, 2, "duplikat nazwy nie tworzy nowego wpisu")
	assert.Equal(t, "Alfa", got[0].Name, "nadpisanie zachowuje pozycję wpisu")
	assert.Equal(t, "Wrocław", got[0].City, "wygrywa ostatni zapis")
	assert.Equal(t, firstID, got[0].ID, "identyfikator wpisu przeżywa nadpisanie")
}

func TestRecipientUpdateByName(t *testing.T) {
	uc, _ := newRecipientUC(t)
	require.NoError(t, uc.Add(entity.Recipient{Name: "Alfa", City: "Poznań"}))

	err := uc.UpdateByName("Alfa", entity.Recipient{Name: "Alfa", City: "Wrocław", NIP: "555"})
	require.NoError(t, err)
	got, err := uc.GetByName("Alfa")
	require.NoError(t, err)
	assert.Equal(t, "Wrocław", got.City)
	assert.Equal(t, "555", got.NIP)

	err = uc.UpdateByName("nie ma takiego", entity.Recipient{Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecipientDeleteByName(t *testing.T) {
	uc, path := newRecipientUC(t)
	require.NoError(t, uc.Add(entity.Recipient{Name: "Alfa"}))
	require.NoError(t, uc.Add(entity.Recipient{Name: "Beta"}))

	require.NoError(t, uc.DeleteByName("Alfa"))
	got := uc.List()
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name)

	err := uc.DeleteByName("Alfa")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Alfa", "usunięcie jest od razu trwałe")
}

func TestRecipientAdd_NaprawiaKodowaniePol(t *testing.T) {
	uc, _ := newRecipientUC(t)

	broken := mojibake(t, "Gęś i Jaźń Sp. j.")
	require.NotEqual(t, "Gęś i Jaźń Sp. j.", broken)

	require.NoError(t, uc.Add(entity.Recipient{Name: broken, City: mojibake(t, "Łódź")}))

	got := uc.List()
	require.Len(t, got, 1)
	assert.Equal(t, "Gęś i Jaźń Sp. j.", got[0].Name)
	assert.Equal(t, "Łódź", got[0].City)
}

func TestRecipientGetByName_ZwracaKopie(t *testing.T) {
	uc, _ := newRecipientUC(t)
	require.NoError(t, uc.Add(entity.Recipient{Name: "Alfa", City: "Poznań"}))

	got, err := uc.GetByName("Alfa")
	require.NoError(t, err)
	got.City = "zmienione lokalnie"

	again, err := uc.GetByName("Alfa")
	require.NoError(t, err)
	assert.Equal(t, "Poznań", again.City, "mutacja kopii nie dotyka kartoteki")
}
