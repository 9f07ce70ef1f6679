package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
)

func TestDateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reports/client/1?start_date=2026-01-01&end_date=2026-01-31", nil)
	from, to, err := dateRange(r)
	require.NoError(t, err)
	require.Equal(t, "2026-01-01", from.Format(dateLayout))
	require.Equal(t, "2026-01-31", to.Format(dateLayout))
}

func TestDateRangeRejectsReversed(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?start_date=2026-02-01&end_date=2026-01-01", nil)
	_, _, err := dateRange(r)
	require.True(t, apperr.IsValidation(err))
}

func TestDateRangeRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?start_date=yesterday&end_date=2026-01-01", nil)
	_, _, err := dateRange(r)
	require.True(t, apperr.IsValidation(err))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-01-15", "entry_date")
	require.NoError(t, err)
	require.Equal(t, 15, d.Day())

	_, err = parseDate("15/01/2026", "entry_date")
	require.True(t, apperr.IsValidation(err))
}
