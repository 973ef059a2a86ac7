package main

import (
	"flag"
	"fmt"
	"log"
	"mosaic-lab/domain"
	"mosaic-lab/serialization"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "mosaic:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Mosaic", "Creator address", "Supply", "Divisibility", "Fee"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	ctx := serialization.NewDeserializationContext(nil)
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				definition, err := domain.UnmarshalMosaicDefinition(v, ctx)
				if err != nil {
					// Keep scanning, one broken record should not hide the others
					fmt.Printf("Error decoding key %s: %v\n", rawKey, err)
					return nil
				}

				fee := "-"
				if definition.IsTransferFeeAvailable() {
					info := definition.TransferFeeInfo()
					fee = fmt.Sprintf("%s %s", info.FeeType(), info.Fee())
				}
				props := definition.Properties()

				table.Append([]string{
					rawKey,
					definition.String(),
					definition.Creator().Address().String(),
					fmt.Sprint(props.InitialSupply()),
					fmt.Sprint(props.Divisibility()),
					fee,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A read-only open cannot truncate the value log, so repair once in write mode
		if strings.Contains(err.Error(), "Log truncate required") {
			fmt.Println("Value log needs truncation, repairing")

			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
