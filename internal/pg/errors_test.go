package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	check := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", fk)))
	assert.False(t, IsForeignKeyViolation(check))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(unique))

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
