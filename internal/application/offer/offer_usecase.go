package offer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oferty-pro/ofertownik/internal/domain"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	domoffer "github.com/oferty-pro/ofertownik/internal/domain/offer"
	"github.com/oferty-pro/ofertownik/internal/domain/repository"
	"github.com/oferty-pro/ofertownik/pkg/logger"
	"github.com/oferty-pro/ofertownik/pkg/textnorm"
)

// OfferUseCase trzyma pozycje aktualnie redagowanej oferty (stan ulotny,
// czyszczony jawnie albo przy wczytaniu innej oferty) i orkiestruje eksport
// do trzech formatów na wspólnej migawce.
type OfferUseCase struct {
	company    *CompanyUseCase
	recipients *RecipientUseCase
	repo       repository.OfferRepository
	txtGen     TextGenerator
	pdfGen     PDFGenerator
	log        *logger.Logger

	items []entity.OfferLineItem
	now   func() time.Time
}

// NewOfferUseCase buduje przypadek użycia oferty.
func NewOfferUseCase(
	company *CompanyUseCase,
	recipients *RecipientUseCase,
	repo repository.OfferRepository,
	txtGen TextGenerator,
	pdfGen PDFGenerator,
	log *logger.Logger,
) *OfferUseCase {
	return &OfferUseCase{
		company:    company,
		recipients: recipients,
		repo:       repo,
		txtGen:     txtGen,
		pdfGen:     pdfGen,
		log:        log,
		now:        time.Now,
	}
}

// AddItem dodaje pozycję z pól tekstowych formularza. Nazwa jest wymagana,
// ilość i cena akceptują przecinek dziesiętny; wartość pozycji jest wyliczana
// od razu. Błąd parsowania nie zmienia listy pozycji.
func (uc *OfferUseCase) AddItem(name, quantity, unitPrice string) error {
	item, err := uc.buildItem(name, quantity, unitPrice)
	if err != nil {
		return err
	}
	uc.items = append(uc.items, item)
	return nil
}

// EditItem podmienia pozycję wskazaną numerem porządkowym (liczonym od 1).
func (uc *OfferUseCase) EditItem(lp int, name, quantity, unitPrice string) error {
	if lp < 1 || lp > len(uc.items) {
		return fmt.Errorf("%w: nieprawidłowy numer pozycji: %d", domain.ErrValidation, lp)
	}
	item, err := uc.buildItem(name, quantity, unitPrice)
	if err != nil {
		return err
	}
	uc.items[lp-1] = item
	return nil
}

// DeleteItem usuwa dokładnie pozycję o wskazanym numerze porządkowym (od 1).
func (uc *OfferUseCase) DeleteItem(lp int) error {
	if lp < 1 || lp > len(uc.items) {
		return fmt.Errorf("%w: nieprawidłowy numer pozycji: %d", domain.ErrValidation, lp)
	}
	uc.items = append(uc.items[:lp-1], uc.items[lp:]...)
	return nil
}

// Items zwraca kopię bieżącej listy pozycji.
func (uc *OfferUseCase) Items() []entity.OfferLineItem {
	out := make([]entity.OfferLineItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Total suma wartości pozycji bieżącej oferty.
func (uc *OfferUseCase) Total() decimal.Decimal {
	return domoffer.OfferTotal(uc.items)
}

// Clear rozpoczyna nową, pustą ofertę.
func (uc *OfferUseCase) Clear() {
	uc.items = nil
}

// Snapshot składa migawkę eksportu: data wystawienia, pełne kopie profilu
// firmy i odbiorcy, kopia pozycji i suma. Pusta lista pozycji albo brak
// wybranego odbiorcy przerywa operację błędem walidacji.
func (uc *OfferUseCase) Snapshot(recipientName string) (*entity.OfferSnapshot, error) {
	if len(uc.items) == 0 {
		return nil, fmt.Errorf("%w: dodaj pozycje do oferty", domain.ErrValidation)
	}
	if recipientName == "" {
		return nil, fmt.Errorf("%w: wybierz odbiorcę oferty", domain.ErrValidation)
	}
	rec, err := uc.recipients.GetByName(recipientName)
	if err != nil {
		return nil, err
	}
	return &entity.OfferSnapshot{
		Date:      uc.now(),
		Company:   uc.company.Profile(),
		Recipient: *rec,
		Items:     uc.Items(),
		Total:     uc.Total(),
	}, nil
}

// ExportText zapisuje ofertę w układzie tekstowym o stałej szerokości.
func (uc *OfferUseCase) ExportText(path, recipientName string) error {
	snap, err := uc.Snapshot(recipientName)
	if err != nil {
		return err
	}
	data, err := uc.txtGen.Generate(snap)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	uc.log.Info().Str("plik", path).Msg("zapisano ofertę TXT")
	return nil
}

// ExportPDF zapisuje sformatowany dokument PDF.
func (uc *OfferUseCase) ExportPDF(path, recipientName string) error {
	snap, err := uc.Snapshot(recipientName)
	if err != nil {
		return err
	}
	data, err := uc.pdfGen.Generate(snap)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	uc.log.Info().Str("plik", path).Msg("zapisano ofertę PDF")
	return nil
}

// ExportJSON zapisuje ofertę w jedynym formacie nadającym się do ponownego
// wczytania.
func (uc *OfferUseCase) ExportJSON(path, recipientName string) error {
	snap, err := uc.Snapshot(recipientName)
	if err != nil {
		return err
	}
	if err := uc.repo.Save(path, snap); err != nil {
		return err
	}
	uc.log.Info().Str("plik", path).Msg("zapisano ofertę JSON")
	return nil
}

// LoadJSON wczytuje ofertę z pliku JSON. Walidacja kształtu i odbiorcy
// odbywa się przed jakąkolwiek mutacją stanu; potem niepuste pola firmy
// nanoszone są na profil, odbiorca trafia do kartoteki (nadpisanie w miejscu
// albo dopisanie z zapisem pliku), a pozycje zastępują bieżącą ofertę.
// Pozycja bez wartości total (lub z zerem) ma ją przeliczaną z ilości i ceny.
func (uc *OfferUseCase) LoadJSON(path string) (*LoadReport, error) {
	doc, err := uc.repo.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.Recipient == nil || doc.Recipient.Name == "" {
		return nil, fmt.Errorf("%w: plik nie zawiera danych odbiorcy", domain.ErrFormat)
	}

	if doc.Company != nil {
		uc.company.MergeFromOffer(doc.Company)
	}

	added, err := uc.recipients.upsertFromOffer(*doc.Recipient)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OfferLineItem, len(doc.Items))
	copy(items, doc.Items)
	for i := range items {
		// Brak total w pliku i total równy zeru są nieodróżnialne — w obu
		// przypadkach wartość jest przeliczana.
		if items[i].Total.IsZero() {
			items[i].Total = domoffer.LineTotal(items[i].Quantity, items[i].UnitPrice)
		}
	}
	uc.items = items

	report := &LoadReport{
		RecipientName:  doc.Recipient.Name,
		RecipientAdded: added,
		ItemCount:      len(items),
		OfferDate:      doc.Date,
	}
	if len(items) == 0 {
		report.Warning = "plik nie zawiera pozycji oferty"
	}
	uc.log.Info().
		Str("plik", path).
		Str("odbiorca", report.RecipientName).
		Int("pozycje", report.ItemCount).
		Msg("wczytano ofertę JSON")
	return report, nil
}

// DefaultFileName proponuje nazwę pliku eksportu: Oferta_<odbiorca>_<data>.<ext>.
func (uc *OfferUseCase) DefaultFileName(recipientName, ext string) string {
	return fmt.Sprintf("Oferta_%s_%s.%s",
		recipientName, uc.now().Format("20060102"), strings.TrimPrefix(ext, "."))
}

func (uc *OfferUseCase) buildItem(name, quantity, unitPrice string) (entity.OfferLineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.OfferLineItem{}, fmt.Errorf("%w: nazwa pozycji jest wymagana", domain.ErrValidation)
	}
	q, err := domoffer.ParseQuantity(quantity)
	if err != nil {
		return entity.OfferLineItem{}, err
	}
	p, err := domoffer.ParsePrice(unitPrice)
	if err != nil {
		return entity.OfferLineItem{}, err
	}
	return entity.OfferLineItem{
		Name:      textnorm.Normalize(name),
		Quantity:  q,
		UnitPrice: p,
		Total:     domoffer.LineTotal(q, p),
	}, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: zapis %s: %v", domain.ErrIO, path, err)
	}
	return nil
}
