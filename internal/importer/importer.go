package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, name string) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected header: category,name,description,price_cents,stock,image_url.
type CSVImporter struct {
	reader       *csv.Reader
	productRepo  ProductWriter
	categoryRepo CategoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:       csvr,
		productRepo:  products,
		categoryRepo: categories,
	}
}

// Run parses CSV rows and upserts products, creating categories on demand.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(headers))
	for idx, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = idx
	}
	for _, required := range []string{"category", "name", "price_cents"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	categoryIDs := map[string]string{}
	count := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read row %d: %w", count+1, err)
		}

		categoryName := field(record, cols, "category")
		name := field(record, cols, "name")
		if categoryName == "" || name == "" {
			continue
		}

		categoryID, ok := categoryIDs[categoryName]
		if !ok {
			category, err := i.categoryRepo.Upsert(ctx, categoryName)
			if err != nil {
				return count, fmt.Errorf("upsert category %q: %w", categoryName, err)
			}
			categoryID = category.ID
			categoryIDs[categoryName] = categoryID
		}

		priceCents, err := strconv.ParseInt(field(record, cols, "price_cents"), 10, 64)
		if err != nil {
			return count, fmt.Errorf("row %d: bad price_cents: %w", count+1, err)
		}
		stock := 0
		if raw := field(record, cols, "stock"); raw != "" {
			stock, err = strconv.Atoi(raw)
			if err != nil {
				return count, fmt.Errorf("row %d: bad stock: %w", count+1, err)
			}
		}

		if _, err := i.productRepo.Upsert(ctx, domain.Product{
			CategoryID:  categoryID,
			Name:        name,
			Description: field(record, cols, "description"),
			PriceCents:  priceCents,
			Stock:       stock,
			ImageURL:    field(record, cols, "image_url"),
		}); err != nil {
			return count, fmt.Errorf("upsert product %q: %w", name, err)
		}
		count++
	}
	return count, nil
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
