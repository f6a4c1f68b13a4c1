package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lonelywalls-events/internal/domain"
)

func TestDeterministicID(t *testing.T) {
	a := domain.DeterministicID("notification", "order", "abc")
	b := domain.DeterministicID("notification", "order", "abc")
	c := domain.DeterministicID("notification", "order", "abd")

	assert.NotEqual(t, uuid.Nil, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
