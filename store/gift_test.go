package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftGameDeliversToRecipient(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	addGame(t, s, "gameA", "Item A", 40.00, 3)
	require.NoError(t, s.SetBalance("customer1", 100))

	sellerBefore := balance(t, s, "seller1")

	gift, err := s.GiftGame("customer1", "customer2", "gameA", "Happy birthday!")
	require.NoError(t, err)

	// price 40 + 5% fee = 42 from the sender; seller gets the price.
	assert.InDelta(t, 2.00, gift.Fee, 1e-9)
	assert.InDelta(t, 58.00, balance(t, s, "customer1"), 1e-9)
	assert.InDelta(t, sellerBefore+40.00, balance(t, s, "seller1"), 1e-9)
	assert.Equal(t, 2, stock(t, s, "gameA"))

	assert.Equal(t, []string{"gameA"}, ownedGameIDs(t, s, "customer2"))
	assert.Empty(t, ownedGameIDs(t, s, "customer1"))

	gifts, err := s.Gifts("customer2")
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, "Happy birthday!", gifts[0].Message)
}

func TestGiftGameInsufficientFunds(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	addGame(t, s, "gameA", "Item A", 40.00, 3)
	require.NoError(t, s.SetBalance("customer1", 41.99)) // covers price but not the fee

	_, err := s.GiftGame("customer1", "customer2", "gameA", "")
	require.Error(t, err)
	assert.Equal(t, EINSUFFICIENTFUNDS, ErrorCode(err))
	assert.InDelta(t, 41.99, balance(t, s, "customer1"), 1e-9)
	assert.Equal(t, 3, stock(t, s, "gameA"))
	assert.Empty(t, ownedGameIDs(t, s, "customer2"))
}

func TestGiftGameUnknownRecipient(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.GiftGame("customer1", "nobody", "game1", "")
	require.Error(t, err)
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestGiftGameOutOfStock(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	// game3 is seeded with zero stock.
	_, err := s.GiftGame("customer2", "customer1", "game3", "")
	require.Error(t, err)
	assert.Equal(t, EOUTOFSTOCK, ErrorCode(err))
	assert.InDelta(t, 500, balance(t, s, "customer2"), 1e-9)
}

func TestGiftGameUnlocksGenerous(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.GiftGame("customer2", "customer1", "game1", "enjoy")
	require.NoError(t, err)

	achs, err := s.Achievements("customer2")
	require.NoError(t, err)
	for _, a := range achs {
		if a.Code == AchGenerous {
			assert.True(t, a.Unlocked)
			return
		}
	}
	t.Fatal("generous achievement missing")
}
