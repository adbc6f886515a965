package store

import (
	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// AddToWishlist records interest in a game. Adding a game twice is a no-op;
// the game must exist, so the list never holds dangling entries.
func (s *Store) AddToWishlist(userID, gameID string) error {
	if _, err := s.User(userID); err != nil {
		return err
	}
	if _, err := s.Game(gameID); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := s.db.Create(&models.WishlistItem{UserID: userID, GameID: gameID}).Error; err != nil {
		return err
	}
	return s.persistSession()
}

func (s *Store) RemoveFromWishlist(userID, gameID string) error {
	res := s.db.Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&models.WishlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Errorf(ENOTFOUND, "game %q is not on the wishlist", gameID)
	}
	return s.persistSession()
}
