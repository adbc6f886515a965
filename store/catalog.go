package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// AddGame creates a catalog entry for the seller. New games start with zero
// stock; stock arrives through supplier orders.
func (s *Store) AddGame(sellerID, name string, price float64) (models.Game, error) {
	seller, err := s.User(sellerID)
	if err != nil {
		return models.Game{}, err
	}
	if seller.Role != models.RoleSeller {
		return models.Game{}, Errorf(EINVALID, "user %q is not a seller", sellerID)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Game{}, Errorf(EINVALID, "game name is required")
	}
	if price < 0 {
		return models.Game{}, Errorf(EINVALID, "price cannot be negative")
	}

	game := models.Game{
		ID:       newID("game"),
		Name:     name,
		Price:    price,
		SellerID: sellerID,
		Stock:    0,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return models.Game{}, err
	}
	return game, nil
}

// EditGame updates name and price on an owned copy of the row; no other
// catalog entries are touched.
func (s *Store) EditGame(gameID, name string, price float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Errorf(EINVALID, "game name is required")
	}
	if price < 0 {
		return Errorf(EINVALID, "price cannot be negative")
	}
	game, err := s.Game(gameID)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Game{ID: game.ID}).Updates(map[string]any{
		"name":  name,
		"price": price,
	}).Error
}

func (s *Store) RemoveGame(gameID string) error {
	res := s.db.Delete(&models.Game{}, "id = ?", gameID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Errorf(ENOTFOUND, "no game with id %q", gameID)
	}
	return nil
}

// Game fetches a single catalog entry with its reviews.
func (s *Store) Game(id string) (models.Game, error) {
	var game models.Game
	err := s.db.Preload("Reviews").First(&game, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Game{}, Errorf(ENOTFOUND, "no game with id %q", id)
	}
	return game, err
}

// Games lists the catalog, newest first.
func (s *Store) Games() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Preload("Reviews").Order("created_at DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// AddReview appends a review and unlocks the Reviewer achievement.
func (s *Store) AddReview(userID, gameID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return Errorf(EINVALID, "rating must be between 1 and 5, got %d", rating)
	}
	user, err := s.User(userID)
	if err != nil {
		return err
	}
	game, err := s.Game(gameID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		review := models.Review{
			GameID:   game.ID,
			UserID:   user.ID,
			UserName: user.Name,
			Rating:   rating,
			Comment:  comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return s.unlockQuiet(tx, user.ID, AchReviewer)
	})
	if err != nil {
		return err
	}
	return s.persistSession()
}
