package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookFixture(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestWorkbookParser_Parse(t *testing.T) {
	buf := workbookFixture(t, [][]interface{}{
		{"Дата операции", "Номер карты", "Сумма операции", "Категория", "Описание"},
		{"31.12.2021 16:44:00", "*7197", "-160,89", "Супермаркеты", "Колхоз"},
		{"30.12.2021 19:06:39", "*4556", "-1 198,23", "Переводы", "Перевод"},
		{"25.12.2021 12:00:00", "", "17500", "Пополнения", "Зарплата"},
	})

	p := &WorkbookParser{}
	txns, err := p.Parse(buf)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.True(t, txns[0].DateValid)
	require.True(t, txns[0].Amount.Valid)
	assert.Equal(t, "-160.89", txns[0].Amount.Decimal.StringFixed(2))
	assert.Equal(t, "*7197", txns[0].CardLastDigits)

	assert.Equal(t, "-1198.23", txns[1].Amount.Decimal.StringFixed(2))

	assert.Empty(t, txns[2].CardLastDigits)
	assert.True(t, txns[2].Amount.Decimal.IsPositive())
}

func TestWorkbookParser_MissingDateColumn(t *testing.T) {
	buf := workbookFixture(t, [][]interface{}{
		{"Сумма операции", "Категория"},
		{"-100,00", "food"},
	})

	p := &WorkbookParser{}
	_, err := p.Parse(buf)
	var dcErr *DateColumnError
	require.ErrorAs(t, err, &dcErr)
}

func TestWorkbookParser_ShortRows(t *testing.T) {
	// Trailing empty cells are not materialized by the sheet reader.
	buf := workbookFixture(t, [][]interface{}{
		{"Дата операции", "Сумма операции", "Категория"},
		{"01.01.2023", "-100,00"},
	})

	p := &WorkbookParser{}
	txns, err := p.Parse(buf)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Empty(t, txns[0].Category)
}

func TestWorkbookParser_NotAWorkbook(t *testing.T) {
	p := &WorkbookParser{}
	_, err := p.Parse(bytes.NewReader([]byte("plainly not a zip archive")))
	assert.Error(t, err)
}
