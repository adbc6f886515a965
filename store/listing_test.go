package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

func TestListForResaleKeepsCatalogEntry(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	listing, err := s.ListForResale("seller1", "game1", 30.00)
	require.NoError(t, err)
	assert.Equal(t, "game1", listing.GameID)

	// The customer-facing catalog still has the game.
	g, err := s.Game("game1")
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk 2078", g.Name)
}

func TestListForResaleValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.ListForResale("customer1", "game1", 30.00)
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.ListForResale("seller1", "game1", 0)
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.ListForResale("seller1", "no-such-game", 30.00)
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestBuyListingDebitsBuyerAndCreditsOwner(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	buyer, err := s.Register("RivalShop", models.RoleSeller)
	require.NoError(t, err)
	require.NoError(t, s.SetBalance(buyer.ID, 100))

	listing, err := s.ListForResale("seller1", "game1", 30.00)
	require.NoError(t, err)
	ownerBefore := balance(t, s, "seller1")

	relisted, err := s.BuyListing(buyer.ID, listing.ID)
	require.NoError(t, err)

	assert.InDelta(t, 70.00, balance(t, s, buyer.ID), 1e-9)
	assert.InDelta(t, ownerBefore+30.00, balance(t, s, "seller1"), 1e-9)
	assert.Equal(t, buyer.ID, relisted.SellerID)
	assert.InDelta(t, 45.00, relisted.Price, 1e-9) // 1.5× markup
	assert.Zero(t, relisted.Stock)

	listings, err := s.Listings()
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestBuyListingInsufficientFunds(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	buyer, err := s.Register("BrokeShop", models.RoleSeller)
	require.NoError(t, err)

	listing, err := s.ListForResale("seller1", "game1", 30.00)
	require.NoError(t, err)

	_, err = s.BuyListing(buyer.ID, listing.ID)
	require.Error(t, err)
	assert.Equal(t, EINSUFFICIENTFUNDS, ErrorCode(err))

	listings, err := s.Listings()
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestBuyListingOwnListing(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	listing, err := s.ListForResale("seller1", "game1", 30.00)
	require.NoError(t, err)

	_, err = s.BuyListing("seller1", listing.ID)
	require.Error(t, err)
	assert.Equal(t, EINVALID, ErrorCode(err))
}
