package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// AddToCart queues one copy of a game, creating the line or bumping its
// quantity. A line can never ask for more copies than the catalog has.
func (s *Store) AddToCart(userID, gameID string) error {
	user, err := s.User(userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleCustomer {
		return Errorf(EINVALID, "user %q is not a customer", userID)
	}
	game, err := s.Game(gameID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := ensureCart(tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND game_id = ?", cart.CartID, gameID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if game.Stock <= 0 {
				return Errorf(EOUTOFSTOCK, "%s is out of stock", game.Name)
			}
			item = models.CartItem{
				CartID:         cart.CartID,
				GameID:         game.ID,
				GameName:       game.Name,
				SellerID:       game.SellerID,
				UnitPrice:      game.Price,
				EffectivePrice: game.Price,
				Quantity:       1,
				AddedAt:        time.Now(),
			}
			return tx.Create(&item).Error
		case err != nil:
			return err
		default:
			if game.Stock <= item.Quantity {
				return Errorf(EOUTOFSTOCK, "only %d copies of %s in stock", game.Stock, game.Name)
			}
			return tx.Model(&item).Updates(map[string]any{
				"quantity": item.Quantity + 1,
				"added_at": time.Now(),
			}).Error
		}
	})
}

// RemoveFromCart deletes the whole line, not one copy.
func (s *Store) RemoveFromCart(userID, gameID string) error {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errorf(ENOTFOUND, "game %q is not in the cart", gameID)
	}
	if err != nil {
		return err
	}

	res := s.db.Where("cart_id = ? AND game_id = ?", cart.CartID, gameID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Errorf(ENOTFOUND, "game %q is not in the cart", gameID)
	}
	return nil
}

// CartItems returns the user's cart lines, oldest first.
func (s *Store) CartItems(userID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id")
	}).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// ApplyDiscount lowers the effective price of every matching line by the
// rule's percentage. Applying a code twice compounds; that is the policy,
// not an accident.
func (s *Store) ApplyDiscount(userID, code string) error {
	discount, err := s.findDiscount(code)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing to discount
		}
		if err != nil {
			return err
		}

		factor := 1 - discount.Percentage/100
		for _, item := range cart.Items {
			if discount.Scope != models.ScopeAll && discount.Scope != item.GameID {
				continue
			}
			if err := tx.Model(&models.CartItem{ID: item.ID}).
				Update("effective_price", item.EffectivePrice*factor).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureCart returns the user's cart, creating the row on first use.
func ensureCart(tx *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return models.Cart{}, err
		}
		return cart, nil
	}
	return cart, err
}
