// Command seedmenu converts a menu Excel workbook into a SQL seed file.
// The workbook's first sheet holds one row per menu item with columns:
// Restaurant, Address, Cuisine, Item, Price, Category. Data starts at row 2.
// Usage: go run ./cmd/seedmenu menus.xlsx
// Output: db/seeds/menu.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type restaurantEntry struct {
	name    string
	address string
	cuisine string
}

type foodEntry struct {
	restaurant string
	name       string
	price      float64
	category   string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "menus.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/menu.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	restaurants, foods, err := parseMenuSheet(f)
	if err != nil {
		return fmt.Errorf("parse menu sheet: %w", err)
	}
	log.Printf("menu sheet: %d restaurants, %d items", len(restaurants), len(foods))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Restaurant and menu seed data generated from Excel.",
		fmt.Sprintf("-- %d restaurants, %d items in batches of %d.", len(restaurants), len(foods), batchSize),
		"-- Run: make seed-menu",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	if err := writeRestaurants(out, restaurants); err != nil {
		return fmt.Errorf("write restaurants: %w", err)
	}

	for i := 0; i < len(foods); i += batchSize {
		end := i + batchSize
		if end > len(foods) {
			end = len(foods)
		}
		if err := writeFoodBatch(out, foods[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d restaurants and %d items in %s", len(restaurants), len(foods), outPath)
	return nil
}

// parseMenuSheet reads the first sheet. Columns: A(0)=restaurant,
// B(1)=address, C(2)=cuisine, D(3)=item, E(4)=price, F(5)=category.
func parseMenuSheet(f *excelize.File) ([]restaurantEntry, []foodEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	var restaurants []restaurantEntry
	var foods []foodEntry

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellVal(row, 0))
		item := strings.TrimSpace(cellVal(row, 3))
		if name == "" || item == "" {
			continue
		}

		priceStr := strings.TrimPrefix(strings.TrimSpace(cellVal(row, 4)), "$")
		price, perr := strconv.ParseFloat(priceStr, 64)
		if perr != nil {
			log.Printf("row %d: skipping item %q with unparseable price %q", i+1, item, priceStr)
			continue
		}

		if !seen[name] {
			seen[name] = true
			restaurants = append(restaurants, restaurantEntry{
				name:    name,
				address: strings.TrimSpace(cellVal(row, 1)),
				cuisine: strings.TrimSpace(cellVal(row, 2)),
			})
		}

		foods = append(foods, foodEntry{
			restaurant: name,
			name:       item,
			price:      price,
			category:   strings.TrimSpace(cellVal(row, 5)),
		})
	}
	return restaurants, foods, nil
}

func writeRestaurants(out *os.File, restaurants []restaurantEntry) error {
	if len(restaurants) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO restaurants (name, address, cuisine) VALUES\n")
	for i := range restaurants {
		r := &restaurants[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s')",
			escapeSQL(r.name), escapeSQL(r.address), escapeSQL(r.cuisine))
	}
	b.WriteString("\nON CONFLICT (name) DO NOTHING;\n\n")

	_, err := out.WriteString(b.String())
	return err
}

func writeFoodBatch(out *os.File, batch []foodEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO foods (restaurant_id, name, price, category)\nSELECT r.id, v.name, v.price, v.category\nFROM (VALUES\n")
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f::numeric, '%s')",
			escapeSQL(e.restaurant), escapeSQL(e.name), e.price, escapeSQL(e.category))
	}
	b.WriteString("\n) AS v(restaurant, name, price, category)\nJOIN restaurants r ON r.name = v.restaurant;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
