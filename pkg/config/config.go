package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config grupuje konfigurację aplikacji (odczyt przez Vipera ze zmiennych
// środowiskowych i opcjonalnie z pliku).
type Config struct {
	App   AppConfig
	Files FilesConfig
	Offer OfferConfig
	PDF   PDFConfig
}

// AppConfig konfiguracja ogólna.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// FilesConfig ścieżki plików danych (względem bieżącego katalogu).
type FilesConfig struct {
	CompanyFile    string
	RecipientsFile string
}

// OfferConfig parametry dokumentu oferty.
type OfferConfig struct {
	Currency     string // sufiks walutowy kwot, np. PLN
	ValidityDays int    // termin ważności liczony od daty wystawienia
}

// PDFConfig parametry renderera PDF.
type PDFConfig struct {
	FontDirs []string // dodatkowe katalogi przeszukiwane za czcionkami TTF
}

// Load czyta konfigurację ze zmiennych środowiskowych (i opcjonalnie z pliku
// .env lub config.env). Zmienne środowiskowe mają pierwszeństwo.
func Load() (*Config, error) {
	v := viper.New()

	// Opcjonalny plik konfiguracyjny — brak pliku nie jest błędem.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ofertownik"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Files: FilesConfig{
			CompanyFile:    getString(v, "COMPANY_FILE", "company_data.json"),
			RecipientsFile: getString(v, "RECIPIENTS_FILE", "recipients.json"),
		},
		Offer: OfferConfig{
			Currency:     getString(v, "OFFER_CURRENCY", "PLN"),
			ValidityDays: getInt(v, "OFFER_VALIDITY_DAYS", 30),
		},
		PDF: PDFConfig{
			FontDirs: splitList(getString(v, "PDF_FONT_DIRS", "")),
		},
	}
	return cfg, nil
}

// splitList dzieli listę ścieżek w konwencji systemowej (PATH-owej).
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return filepath.SplitList(s)
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
