package pdf

import (
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	coreentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// builtInFamily czcionka wbudowana gofpdf — ograniczone pokrycie Unicode,
// ale zawsze dostępna.
const builtInFamily = "helvetica"

// fontCandidate rodzina TTF z pełnym pokryciem polskich znaków diakrytycznych.
// Pusta nazwa pliku bold oznacza użycie odmiany podstawowej również dla
// pogrubienia.
type fontCandidate struct {
	family  string
	regular string
	bold    string
	dirs    []string
}

// Kolejność prób: znana czcionka z pełnym Unicode, systemowa czcionka
// unikodowa, regionalny zamiennik. Pierwsza skutecznie zarejestrowana wygrywa.
var fontCandidates = []fontCandidate{
	{
		family:  "DejaVuSans",
		regular: "DejaVuSans.ttf",
		bold:    "DejaVuSans-Bold.ttf",
		dirs: []string{
			"/usr/share/fonts/truetype/dejavu",
			"/usr/share/fonts/TTF",
			"C:/Windows/Fonts",
		},
	},
	{
		family:  "ArialUnicode",
		regular: "ARIALUNI.TTF",
		dirs: []string{
			"C:/Windows/Fonts",
		},
	},
	{
		family:  "LiberationSans",
		regular: "LiberationSans-Regular.ttf",
		bold:    "LiberationSans-Bold.ttf",
		dirs: []string{
			"/usr/share/fonts/truetype/liberation",
			"/usr/share/fonts/TTF",
		},
	},
}

// discoverFonts szuka pierwszej czcionki, którą da się znaleźć i zarejestrować.
// Niepowodzenie jednego kandydata nie przerywa poszukiwań; gdy wszystkie
// zawiodą, wracamy do czcionki wbudowanej (pusta lista czcionek własnych) —
// dokument powstaje mimo zdegradowanego pokrycia znaków.
func discoverFonts(extraDirs []string) (string, []*coreentity.CustomFont) {
	for _, cand := range fontCandidates {
		dirs := make([]string, 0, len(extraDirs)+len(cand.dirs))
		dirs = append(dirs, extraDirs...)
		dirs = append(dirs, cand.dirs...)

		for _, dir := range dirs {
			regular := filepath.Join(dir, cand.regular)
			if !fileExists(regular) {
				continue
			}
			bold := regular
			if cand.bold != "" {
				if p := filepath.Join(dir, cand.bold); fileExists(p) {
					bold = p
				}
			}
			fonts, err := repository.New().
				AddUTF8Font(cand.family, fontstyle.Normal, regular).
				AddUTF8Font(cand.family, fontstyle.Italic, regular).
				AddUTF8Font(cand.family, fontstyle.Bold, bold).
				AddUTF8Font(cand.family, fontstyle.BoldItalic, bold).
				Load()
			if err != nil {
				continue
			}
			return cand.family, fonts
		}
	}
	return builtInFamily, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
