package menuexport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/menuexport"
)

func TestWriteWorkbook(t *testing.T) {
	restaurant := &domain.Restaurant{ID: 7, Name: "Pho Time"}
	foods := []domain.Food{
		{ID: 1, RestaurantID: 7, Name: "Beef Pho", Price: 13.95, Category: "noodles"},
		{ID: 2, RestaurantID: 7, Name: "Spring Rolls", Price: 6.50, Category: "appetizers"},
	}

	var buf bytes.Buffer
	require.NoError(t, menuexport.Write(&buf, restaurant, foods))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Menu"}, f.GetSheetList())

	title, err := f.GetCellValue("Menu", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Pho Time", title)

	header, err := f.GetCellValue("Menu", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Name", header)

	name, err := f.GetCellValue("Menu", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Beef Pho", name)

	category, err := f.GetCellValue("Menu", "D4")
	require.NoError(t, err)
	assert.Equal(t, "appetizers", category)
}

func TestWriteEmptyMenu(t *testing.T) {
	restaurant := &domain.Restaurant{ID: 7, Name: "Pho Time"}

	var buf bytes.Buffer
	require.NoError(t, menuexport.Write(&buf, restaurant, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Menu")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "title and header rows only")
}
