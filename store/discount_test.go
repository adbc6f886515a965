package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiscountDuplicateCodeCaseInsensitive(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.CreateDiscount("SAVE10", "all", 10)
	require.NoError(t, err)

	_, err = s.CreateDiscount("save10", "all", 20)
	require.Error(t, err)
	assert.Equal(t, EDUPLICATECODE, ErrorCode(err))

	discounts, err := s.Discounts()
	require.NoError(t, err)
	assert.Len(t, discounts, 1)
}

func TestCreateDiscountValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())

	_, err := s.CreateDiscount("", "all", 10)
	assert.Equal(t, EINVALID, ErrorCode(err))

	_, err = s.CreateDiscount("ZERO", "all", 0)
	assert.Equal(t, EINVALID, ErrorCode(err))

	_, err = s.CreateDiscount("TOOMUCH", "all", 101)
	assert.Equal(t, EINVALID, ErrorCode(err))

	_, err = s.CreateDiscount("GHOST", "no-such-game", 10)
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestCreateDiscountScopedToGame(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	d, err := s.CreateDiscount("CYBER20", "game1", 20)
	require.NoError(t, err)
	assert.Equal(t, "game1", d.Scope)
	assert.InDelta(t, 20, d.Percentage, 1e-9)
}
