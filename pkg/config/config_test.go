package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferty-pro/ofertownik/pkg/config"
)

func TestLoad_WartosciDomyslne(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ofertownik", cfg.App.Name)
	assert.Equal(t, "company_data.json", cfg.Files.CompanyFile)
	assert.Equal(t, "recipients.json", cfg.Files.RecipientsFile)
	assert.Equal(t, "PLN", cfg.Offer.Currency)
	assert.Equal(t, 30, cfg.Offer.ValidityDays)
	assert.Empty(t, cfg.PDF.FontDirs)
}

func TestLoad_ZmienneSrodowiskoweMajaPierwszenstwo(t *testing.T) {
	t.Setenv("OFFER_CURRENCY", "EUR")
	t.Setenv("OFFER_VALIDITY_DAYS", "14")
	t.Setenv("COMPANY_FILE", "/tmp/firma.json")
	t.Setenv("PDF_FONT_DIRS", "/opt/fonts"+string(filepath.ListSeparator)+"/usr/local/fonts")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Offer.Currency)
	assert.Equal(t, 14, cfg.Offer.ValidityDays)
	assert.Equal(t, "/tmp/firma.json", cfg.Files.CompanyFile)
	assert.Equal(t, []string{"/opt/fonts", "/usr/local/fonts"}, cfg.PDF.FontDirs)
}

func TestLoad_NieliczbowyTerminWaznosciWracaDoDomyslnego(t *testing.T) {
	t.Setenv("OFFER_VALIDITY_DAYS", "za miesiąc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Offer.ValidityDays)
}
