package main

import (
	"flag"
	"fmt"
	"io"
	"mosaic-lab/account"
	"mosaic-lab/domain"
	"mosaic-lab/importer"
	"mosaic-lab/internal"
	"mosaic-lab/repositories"
	"mosaic-lab/serialization"
	"mosaic-lab/services"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Fatal error: %v", err))
		os.Exit(1)
	}
}

// run keeps every resource behind a defer so cleanup happens before main exits.
func run() error {
	namespace := flag.String("namespace", "", "list the definitions of this namespace")
	get := flag.String("get", "", "show one definition, e.g. \"alice.vouchers * Alice's vouchers\"")
	register := flag.String("register", "", "register the definition stored in this JSON file")
	flag.Parse()

	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Accounts, repository, service
	lookup, err := account.NewCachingLookup(config.AccountCacheSize, account.DirectLookup{})
	if err != nil {
		return err
	}
	ctx := serialization.NewDeserializationContext(lookup)
	repository := repositories.NewMosaicDefinitionRepository(db, log, ctx)
	service := services.NewMosaicService(log, repository, ctx)

	// 4. Seed
	if config.SeedFile != nil {
		if err := importSeed(*config.SeedFile, ctx, service); err != nil {
			return err
		}
	}

	// 5. Command
	switch {
	case *register != "":
		data, err := os.ReadFile(*register)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", *register, err)
		}
		definition, err := service.RegisterJSON(data)
		if err != nil {
			return err
		}
		color.Green.Printf("Registered %s\n", definition)
	case *get != "":
		definition, err := service.Get(*get)
		if err != nil {
			return err
		}
		render(os.Stdout, []domain.MosaicDefinition{definition})
	case *namespace != "":
		definitions, err := service.List(*namespace)
		if err != nil {
			return err
		}
		render(os.Stdout, definitions)
	default:
		flag.Usage()
	}
	return nil
}

func importSeed(path string, ctx serialization.DeserializationContext, service services.IMosaicService) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	definitions, err := importer.ParseYAML(file, ctx)
	if err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	imported, err := service.ImportSeed(definitions)
	if err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	color.Cyan.Printf("Seed: %d/%d definitions imported from %s\n", imported, len(definitions), path)
	return nil
}

func render(w io.Writer, definitions []domain.MosaicDefinition) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Mosaic", "Creator", "Description", "Divisibility", "Supply", "Mutable", "Transferable", "Transfer fee"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, d := range definitions {
		props := d.Properties()
		fee := "-"
		if d.IsTransferFeeAvailable() {
			info := d.TransferFeeInfo()
			fee = fmt.Sprintf("%s %s of %s to %s", info.FeeType(), info.Fee(), info.MosaicID(), info.Recipient())
		}
		table.Append([]string{
			d.String(),
			d.Creator().String(),
			d.Descriptor().String(),
			fmt.Sprint(props.Divisibility()),
			fmt.Sprint(props.InitialSupply()),
			fmt.Sprint(props.IsSupplyMutable()),
			fmt.Sprint(props.IsTransferable()),
			fee,
		})
	}
	table.Render()
}
