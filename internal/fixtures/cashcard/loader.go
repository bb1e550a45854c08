// Package cashcard loads seed rows for the cash_card table. Seeding is a
// test-lifecycle concern; the running service only ever reads.
package cashcard

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/cashcard/pkg/domain"
	"github.com/amirasaad/cashcard/pkg/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

//go:embed seed.csv
var seedCSV string

// LoadSeedCSV loads cash card seed rows from a CSV file or the embedded
// content. If path is empty, the embedded CSV is used.
func LoadSeedCSV(path string) ([]dto.CashCardCreate, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		r = strings.NewReader(seedCSV)
	}

	return parseSeedCSV(r)
}

func parseSeedCSV(r io.Reader) ([]dto.CashCardCreate, error) {
	csvReader := csv.NewReader(r)
	// Rows with the wrong field count are skipped below instead of aborting
	// the whole load.
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	var creates []dto.CashCardCreate
	for i, rec := range records {
		if i == 0 {
			if len(rec) < 2 {
				return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns, got %d", len(rec))
			}
			continue // skip header
		}
		if len(rec) < 2 {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q: %w", i, rec[0], err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q: %w", i, rec[1], err)
		}

		create := dto.CashCardCreate{ID: id, Amount: amount}
		if err := validate.Struct(create); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		// Sign check lives in the domain constructor; validator cannot see
		// inside decimal.Decimal.
		if _, err := domain.NewCashCard(id, amount); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		creates = append(creates, create)
	}
	return creates, nil
}
