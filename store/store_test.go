package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

func newTestStore(t *testing.T, cfg Config, opts ...Option) *Store {
	t.Helper()
	s, err := Open(cfg, opts...)
	require.NoError(t, err)
	require.NoError(t, s.Seed())
	return s
}

// addGame inserts a catalog entry with explicit price and stock, bypassing
// the zero-stock rule of AddGame so scenarios can start from known numbers.
func addGame(t *testing.T, s *Store, id, name string, price float64, stock int) {
	t.Helper()
	game := models.Game{ID: id, Name: name, Price: price, SellerID: "seller1", Stock: stock}
	require.NoError(t, s.db.Create(&game).Error)
}

func balance(t *testing.T, s *Store, userID string) float64 {
	t.Helper()
	u, err := s.User(userID)
	require.NoError(t, err)
	return u.Balance
}

func stock(t *testing.T, s *Store, gameID string) int {
	t.Helper()
	g, err := s.Game(gameID)
	require.NoError(t, err)
	return g.Stock
}
