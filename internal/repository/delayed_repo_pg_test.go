package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewDelayedPassengerRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewDelayedPassengerRepository(pool)
	assert.NotNil(t, repo)
}
