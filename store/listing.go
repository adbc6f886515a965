package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// ListForResale puts a game on the seller-to-seller market. The customer
// catalog keeps its entry; a listing is an offer, not a withdrawal.
func (s *Store) ListForResale(sellerID, gameID string, price float64) (models.SellerListing, error) {
	seller, err := s.User(sellerID)
	if err != nil {
		return models.SellerListing{}, err
	}
	if seller.Role != models.RoleSeller {
		return models.SellerListing{}, Errorf(EINVALID, "user %q is not a seller", sellerID)
	}
	if price <= 0 {
		return models.SellerListing{}, Errorf(EINVALID, "listing price must be positive")
	}
	game, err := s.Game(gameID)
	if err != nil {
		return models.SellerListing{}, err
	}

	listing := models.SellerListing{
		ID:        newID("listing"),
		GameID:    game.ID,
		GameName:  game.Name,
		SellerID:  sellerID,
		Price:     price,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&listing).Error; err != nil {
		return models.SellerListing{}, err
	}
	return listing, nil
}

// BuyListing lets a seller buy another seller's listing. The buyer pays from
// their own balance, the listing seller is credited, and the game reappears
// in the buyer's catalog at the configured markup.
func (s *Store) BuyListing(buyerID, listingID string) (models.Game, error) {
	buyer, err := s.User(buyerID)
	if err != nil {
		return models.Game{}, err
	}
	if buyer.Role != models.RoleSeller {
		return models.Game{}, Errorf(EINVALID, "user %q is not a seller", buyerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var relisted models.Game
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var listing models.SellerListing
		err := tx.First(&listing, "id = ?", listingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Errorf(ENOTFOUND, "no listing with id %q", listingID)
		}
		if err != nil {
			return err
		}
		if listing.SellerID == buyerID {
			return Errorf(EINVALID, "cannot buy your own listing")
		}

		liveBuyer, err := lockUser(tx, buyerID)
		if err != nil {
			return err
		}
		if liveBuyer.Balance < listing.Price {
			return Errorf(EINSUFFICIENTFUNDS, "balance %.2f is below listing price %.2f",
				liveBuyer.Balance, listing.Price)
		}

		if err := tx.Model(&models.User{ID: buyerID}).
			Update("balance", liveBuyer.Balance-listing.Price).Error; err != nil {
			return err
		}
		owner, err := lockUser(tx, listing.SellerID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.User{ID: owner.ID}).
			Update("balance", owner.Balance+listing.Price).Error; err != nil {
			return err
		}

		relisted = models.Game{
			ID:       newID("game"),
			Name:     listing.GameName,
			Price:    listing.Price * s.cfg.ResaleMarkup,
			SellerID: buyerID,
			Stock:    0,
		}
		if err := tx.Create(&relisted).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
	if err != nil {
		return models.Game{}, err
	}
	return relisted, s.persistSession()
}

// Listings returns the open resale market, newest first.
func (s *Store) Listings() ([]models.SellerListing, error) {
	var listings []models.SellerListing
	if err := s.db.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
