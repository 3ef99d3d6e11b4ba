package db_test

import (
	"testing"

	"github.com/gnames/geodb/internal/iodb"
	"github.com/gnames/geodb/pkg/db"
	"github.com/stretchr/testify/assert"
)

// TestPgxOperatorImplementsInterface verifies that the pgx operator
// satisfies db.Operator without connecting.
func TestPgxOperatorImplementsInterface(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool())
	assert.NoError(t, op.Close())
}
