// Package menuexport renders a restaurant menu as an xlsx workbook.
package menuexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/yufanhao/munch-backend/internal/domain"
)

const sheetName = "Menu"

var columns = []string{"ID", "Name", "Price", "Category"}

// Write streams an xlsx workbook with one row per menu item to w.
func Write(w io.Writer, restaurant *domain.Restaurant, foods []domain.Food) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	// Title row with the restaurant name, then the header row.
	if err := f.SetCellValue(sheetName, "A1", restaurant.Name); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, food := range foods {
		values := []interface{}{food.ID, food.Name, food.Price, food.Category}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
