package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFromPgMapsConstraintViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_consumption_active"}
	require.True(t, IsConflict(FromPg(unique)))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "consumption_entries_client_id_fkey"}
	require.True(t, IsValidation(FromPg(fk)))
}

func TestFromPgPassesThroughUnknown(t *testing.T) {
	require.NoError(t, FromPg(nil))

	plain := errors.New("connection reset")
	require.Equal(t, plain, FromPg(plain))

	other := &pgconn.PgError{Code: "40001"}
	require.Equal(t, error(other), FromPg(other))
}

func TestIsHelpersMatchWrappedErrors(t *testing.T) {
	err := fmt.Errorf("record payment: %w", NotFoundf("payment type %d not found", 9))
	require.True(t, IsNotFound(err))
	require.False(t, IsConflict(err))
}
