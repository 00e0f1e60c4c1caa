package reports

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/model"
)

func TestFilterByDate_InclusiveBounds(t *testing.T) {
	var txns []model.Transaction
	for day := 1; day <= 10; day++ {
		txns = append(txns, tx(fmt.Sprintf("%02d.01.2023", day), "-10"))
	}

	start := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC)

	got := FilterByDate(txns, start, end)
	require.Len(t, got, 5)
	assert.Equal(t, 3, got[0].Date.Day())
	assert.Equal(t, 7, got[4].Date.Day())
}

func TestFilterByDate_UndefinedDatesExcluded(t *testing.T) {
	txns := []model.Transaction{
		tx("01.01.2023", "-10"),
		tx("", "-20"),
		tx("02.01.2023", "-30"),
	}

	got := FilterByDate(txns,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, "-10", got[0].Amount.Decimal.String())
	assert.Equal(t, "-30", got[1].Amount.Decimal.String())
}

func TestFilterByDate_EmptyResult(t *testing.T) {
	txns := []model.Transaction{tx("01.01.2023", "-10")}
	got := FilterByDate(txns,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, got)
}

func TestFilterByDateRange_StringBounds(t *testing.T) {
	txns := []model.Transaction{
		tx("01.01.2023", "-10"),
		tx("15.01.2023", "-20"),
		tx("01.02.2023", "-30"),
	}

	got, err := FilterByDateRange(txns, "2023-01-01", "2023-01-31")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Day-first bounds work too.
	got, err = FilterByDateRange(txns, "01.01.2023", "31.01.2023")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = FilterByDateRange(txns, "garbage", "2023-01-31")
	assert.Error(t, err)
}
