// Ofertownik — narzędzie do redagowania ofert handlowych: stały profil firmy,
// kartoteka odbiorców, pozycje z cenami i eksport oferty do TXT, PDF lub JSON
// (tylko JSON da się wczytać z powrotem).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	appoffer "github.com/oferty-pro/ofertownik/internal/application/offer"
	"github.com/oferty-pro/ofertownik/internal/domain/entity"
	domoffer "github.com/oferty-pro/ofertownik/internal/domain/offer"
	"github.com/oferty-pro/ofertownik/internal/infrastructure/jsonfile"
	"github.com/oferty-pro/ofertownik/internal/infrastructure/pdf"
	"github.com/oferty-pro/ofertownik/internal/infrastructure/plaintext"
	"github.com/oferty-pro/ofertownik/pkg/config"
	"github.com/oferty-pro/ofertownik/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("wczytanie konfiguracji: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	companyRepo := jsonfile.NewCompanyRepository(cfg.Files.CompanyFile)
	recipientRepo := jsonfile.NewRecipientRepository(cfg.Files.RecipientsFile)
	offerRepo := jsonfile.NewOfferRepository()

	companyUC := appoffer.NewCompanyUseCase(companyRepo, log)
	recipientUC := appoffer.NewRecipientUseCase(recipientRepo, log)
	txtGen := plaintext.NewOfferTextGenerator(cfg.Offer.Currency, cfg.Offer.ValidityDays)
	pdfGen := pdf.NewOfferPDFGenerator(pdf.Config{
		Currency:     cfg.Offer.Currency,
		ValidityDays: cfg.Offer.ValidityDays,
		FontDirs:     cfg.PDF.FontDirs,
	})
	offerUC := appoffer.NewOfferUseCase(companyUC, recipientUC, offerRepo, txtGen, pdfGen, log)

	app := &cli.App{
		Name:  cfg.App.Name,
		Usage: "tworzenie ofert handlowych (kartoteka odbiorców, eksport TXT/PDF/JSON)",
		Before: func(*cli.Context) error {
			// Nieudane wczytanie jest odwracalne: komunikat trafia do logu,
			// a aplikacja startuje z dotychczasowym (pustym) stanem.
			_ = companyUC.Load()
			_ = recipientUC.Load()
			return nil
		},
		Commands: []*cli.Command{
			companyCommand(companyUC),
			recipientCommand(recipientUC),
			offerCommand(offerUC),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("operacja nie powiodła się")
		os.Exit(1)
	}
}

// ── firma ─────────────────────────────────────────────────────────────────────

func companyCommand(uc *appoffer.CompanyUseCase) *cli.Command {
	return &cli.Command{
		Name:  "firma",
		Usage: "stałe dane firmy (sprzedawcy)",
		Subcommands: []*cli.Command{
			{
				Name:  "pokaz",
				Usage: "wypisz zapisany profil firmy",
				Action: func(*cli.Context) error {
					c := uc.Profile()
					printPair("Nazwa firmy:", c.Name)
					printPair("Adres:", c.Address)
					printPair("Miasto:", c.City)
					printPair("Kod pocztowy:", c.PostalCode)
					printPair("NIP:", c.NIP)
					printPair("Telefon:", c.Phone)
					printPair("Email:", c.Email)
					printPair("Numer konta bankowego:", c.BankAccount)
					return nil
				},
			},
			{
				Name:  "zapisz",
				Usage: "zapisz dane firmy (pola niepodane zachowują dotychczasową wartość)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nazwa", Usage: "nazwa firmy"},
					&cli.StringFlag{Name: "adres"},
					&cli.StringFlag{Name: "miasto"},
					&cli.StringFlag{Name: "kod", Usage: "kod pocztowy"},
					&cli.StringFlag{Name: "nip"},
					&cli.StringFlag{Name: "telefon"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "konto", Usage: "numer konta bankowego"},
				},
				Action: func(c *cli.Context) error {
					profile := uc.Profile()
					setIf(c, "nazwa", &profile.Name)
					setIf(c, "adres", &profile.Address)
					setIf(c, "miasto", &profile.City)
					setIf(c, "kod", &profile.PostalCode)
					setIf(c, "nip", &profile.NIP)
					setIf(c, "telefon", &profile.Phone)
					setIf(c, "email", &profile.Email)
					setIf(c, "konto", &profile.BankAccount)
					if err := uc.Save(profile); err != nil {
						return err
					}
					fmt.Println("Dane firmy zostały zapisane.")
					return nil
				},
			},
		},
	}
}

// ── odbiorca ──────────────────────────────────────────────────────────────────

func recipientCommand(uc *appoffer.RecipientUseCase) *cli.Command {
	fields := []cli.Flag{
		&cli.StringFlag{Name: "nazwa", Usage: "nazwa odbiorcy (klucz kartoteki)", Required: true},
		&cli.StringFlag{Name: "adres"},
		&cli.StringFlag{Name: "miasto"},
		&cli.StringFlag{Name: "kod", Usage: "kod pocztowy"},
		&cli.StringFlag{Name: "nip"},
		&cli.StringFlag{Name: "telefon"},
		&cli.StringFlag{Name: "email"},
	}
	return &cli.Command{
		Name:  "odbiorca",
		Usage: "kartoteka odbiorców ofert",
		Subcommands: []*cli.Command{
			{
				Name:  "lista",
				Usage: "wypisz kartotekę odbiorców",
				Action: func(*cli.Context) error {
					for i, r := range uc.List() {
						fmt.Printf("%d. %s | %s | %s | NIP: %s\n",
							i+1, r.Name, r.Address, r.City, r.NIP)
					}
					return nil
				},
			},
			{
				Name:  "dodaj",
				Usage: "dodaj odbiorcę (istniejąca nazwa nadpisuje wpis)",
				Flags: fields,
				Action: func(c *cli.Context) error {
					if err := uc.Add(recipientFromFlags(c)); err != nil {
						return err
					}
					fmt.Println("Odbiorca został dodany.")
					return nil
				},
			},
			{
				Name:  "edytuj",
				Usage: "zaktualizuj odbiorcę wskazanego nazwą",
				Flags: fields,
				Action: func(c *cli.Context) error {
					name := c.String("nazwa")
					existing, err := uc.GetByName(name)
					if err != nil {
						return err
					}
					updated := *existing
					setIf(c, "adres", &updated.Address)
					setIf(c, "miasto", &updated.City)
					setIf(c, "kod", &updated.PostalCode)
					setIf(c, "nip", &updated.NIP)
					setIf(c, "telefon", &updated.Phone)
					setIf(c, "email", &updated.Email)
					if err := uc.UpdateByName(name, updated); err != nil {
						return err
					}
					fmt.Println("Odbiorca został zaktualizowany.")
					return nil
				},
			},
			{
				Name:  "usun",
				Usage: "usuń odbiorcę wskazanego nazwą",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nazwa", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := uc.DeleteByName(c.String("nazwa")); err != nil {
						return err
					}
					fmt.Println("Odbiorca został usunięty.")
					return nil
				},
			},
		},
	}
}

// ── oferta ────────────────────────────────────────────────────────────────────

func offerCommand(uc *appoffer.OfferUseCase) *cli.Command {
	outputFlags := []cli.Flag{
		&cli.StringFlag{Name: "txt", Usage: "ścieżka eksportu tekstowego"},
		&cli.StringFlag{Name: "pdf", Usage: "ścieżka eksportu PDF"},
		&cli.StringFlag{Name: "json", Usage: "ścieżka eksportu JSON"},
	}
	return &cli.Command{
		Name:  "oferta",
		Usage: "redagowanie i eksport oferty",
		Subcommands: []*cli.Command{
			{
				Name:  "generuj",
				Usage: "zbuduj ofertę z pozycji i wyeksportuj do wybranych formatów",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "odbiorca", Usage: "nazwa odbiorcy z kartoteki", Required: true},
					&cli.StringSliceFlag{
						Name:  "pozycja",
						Usage: "pozycja oferty w formacie \"nazwa;ilość;cena\" (przecinek dziesiętny dozwolony)",
					},
				}, outputFlags...),
				Action: func(c *cli.Context) error {
					for _, p := range c.StringSlice("pozycja") {
						parts := strings.SplitN(p, ";", 3)
						if len(parts) != 3 {
							return fmt.Errorf("pozycja %q: oczekiwany format \"nazwa;ilość;cena\"", p)
						}
						if err := uc.AddItem(parts[0], parts[1], parts[2]); err != nil {
							return err
						}
					}
					name := c.String("odbiorca")
					exported, err := exportAll(c, uc, name)
					if err != nil {
						return err
					}
					if !exported {
						// Bez flag wyjściowych oferta ląduje w pliku JSON
						// o domyślnej nazwie.
						path := uc.DefaultFileName(name, "json")
						if err := uc.ExportJSON(path, name); err != nil {
							return err
						}
						fmt.Println("Zapisano:", path)
					}
					fmt.Printf("Suma: %s\n", domoffer.FormatAmount(uc.Total()))
					return nil
				},
			},
			{
				Name:      "wczytaj",
				Usage:     "wczytaj ofertę z pliku JSON i opcjonalnie wyeksportuj ponownie",
				ArgsUsage: "<plik.json>",
				Flags:     outputFlags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("podaj ścieżkę pliku oferty JSON")
					}
					report, err := uc.LoadJSON(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("Odbiorca: %s\n", report.RecipientName)
					fmt.Printf("Pozycji: %d\n", report.ItemCount)
					if report.OfferDate != "" {
						fmt.Printf("Data oferty: %s\n", report.OfferDate)
					}
					if report.Warning != "" {
						fmt.Println("Uwaga:", report.Warning)
					}
					_, err = exportAll(c, uc, report.RecipientName)
					return err
				},
			},
		},
	}
}

// exportAll uruchamia eksporty wskazane flagami wyjściowymi. Zwraca
// informację, czy cokolwiek wyeksportowano.
func exportAll(c *cli.Context, uc *appoffer.OfferUseCase, recipientName string) (bool, error) {
	exported := false
	if path := c.String("txt"); path != "" {
		if err := uc.ExportText(path, recipientName); err != nil {
			return exported, err
		}
		exported = true
		fmt.Println("Zapisano:", path)
	}
	if path := c.String("pdf"); path != "" {
		if err := uc.ExportPDF(path, recipientName); err != nil {
			return exported, err
		}
		exported = true
		fmt.Println("Zapisano:", path)
	}
	if path := c.String("json"); path != "" {
		if err := uc.ExportJSON(path, recipientName); err != nil {
			return exported, err
		}
		exported = true
		fmt.Println("Zapisano:", path)
	}
	return exported, nil
}

// ── pomocnicze ────────────────────────────────────────────────────────────────

func recipientFromFlags(c *cli.Context) entity.Recipient {
	return entity.Recipient{
		Name:       c.String("nazwa"),
		Address:    c.String("adres"),
		City:       c.String("miasto"),
		PostalCode: c.String("kod"),
		NIP:        c.String("nip"),
		Phone:      c.String("telefon"),
		Email:      c.String("email"),
	}
}

func setIf(c *cli.Context, flag string, dst *string) {
	if c.IsSet(flag) {
		*dst = c.String(flag)
	}
}

func printPair(label, value string) {
	fmt.Printf("%-24s %s\n", label, value)
}
