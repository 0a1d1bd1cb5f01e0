package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewCheckInRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCheckInRepository(pool)
	assert.NotNil(t, repo)
}
