package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name   string
		err    error
		want   ErrorClassification
		unique bool
	}{
		{"nil", nil, NonRetryable, false},
		{"plain error", errors.New("boom"), NonRetryable, false},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable, false},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable, false},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable, true},
		{"wrapped unique violation", errors.Join(errors.New("ctx"), pgError(pgerrcode.UniqueViolation)), NonRetryable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.unique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.True(t, c.IsUniqueViolation(unique))
	assert.False(t, c.IsUniqueViolation(busy))
	assert.Equal(t, "retryable", Retryable.String())
}
