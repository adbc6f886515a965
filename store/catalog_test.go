package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGameStartsWithZeroStock(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	game, err := s.AddGame("seller1", "Elden Ringtone", 49.99)
	require.NoError(t, err)
	assert.Zero(t, game.Stock)

	got, err := s.Game(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Elden Ringtone", got.Name)
}

func TestAddGameValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.AddGame("customer1", "Nope", 10)
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.AddGame("seller1", "   ", 10)
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.AddGame("seller1", "Nope", -1)
	assert.Equal(t, EINVALID, ErrorCode(err))
}

// An edit lands on the addressed game and nowhere else.
func TestEditGameLeavesOthersAlone(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.EditGame("game1", "Cyberpunk 2079", 49.99))

	g1, err := s.Game("game1")
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk 2079", g1.Name)
	assert.InDelta(t, 49.99, g1.Price, 1e-9)

	g2, err := s.Game("game2")
	require.NoError(t, err)
	assert.Equal(t, "Witcher 4: Wildest Hunt", g2.Name)
	assert.InDelta(t, 69.99, g2.Price, 1e-9)
}

func TestRemoveGame(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.RemoveGame("game2"))

	_, err := s.Game("game2")
	assert.Equal(t, ENOTFOUND, ErrorCode(err))

	err = s.RemoveGame("game2")
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestAddReview(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.AddReview("customer2", "game2", 4, "Solid sequel."))

	game, err := s.Game("game2")
	require.NoError(t, err)
	require.Len(t, game.Reviews, 1)
	assert.Equal(t, "ProGamer", game.Reviews[0].UserName)
	assert.Equal(t, 4, game.Reviews[0].Rating)
}

func TestAddReviewRatingBounds(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	err := s.AddReview("customer2", "game2", 0, "")
	assert.Equal(t, EINVALID, ErrorCode(err))
	err = s.AddReview("customer2", "game2", 6, "")
	assert.Equal(t, EINVALID, ErrorCode(err))
}

func TestAddReviewUnlocksReviewer(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.AddReview("customer2", "game1", 5, "GOTY"))

	achievements, err := s.Achievements("customer2")
	require.NoError(t, err)
	unlocked := false
	for _, a := range achievements {
		if a.Code == AchReviewer {
			unlocked = a.Unlocked
		}
	}
	assert.True(t, unlocked)
}
