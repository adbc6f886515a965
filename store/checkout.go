package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// Checkout turns the user's cart into a committed order:
//
//	subtotal = Σ(effective price × quantity)
//	tax      = subtotal × TaxRate (retained by the platform)
//	total    = subtotal + tax
//
// On success it atomically decrements stock, debits the buyer, credits each
// line's seller its line subtotal, appends the purchases and a sales-history
// point, clears the cart, and returns the immutable invoice. On any failure
// nothing changes: funds fail EINSUFFICIENTFUNDS before stock is touched, and
// a line exceeding stock fails EOUTOFSTOCK.
func (s *Store) Checkout(userID string) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var invoice models.Invoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		buyer, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		var cart models.Cart
		err = tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			return Errorf(EINVALID, "cart is empty")
		}
		if err != nil {
			return err
		}

		var subtotal float64
		for _, item := range cart.Items {
			subtotal += item.EffectivePrice * float64(item.Quantity)
		}
		tax := subtotal * s.cfg.TaxRate
		total := subtotal + tax

		if buyer.Balance < total {
			return Errorf(EINSUFFICIENTFUNDS, "balance %.2f is below order total %.2f", buyer.Balance, total)
		}

		// Validate every line against live stock before mutating anything,
		// so a losing concurrent checkout fails with no partial effects.
		games := make(map[string]models.Game, len(cart.Items))
		for _, item := range cart.Items {
			var game models.Game
			err := tx.First(&game, "id = ?", item.GameID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Errorf(ENOTFOUND, "game %q is no longer in the catalog", item.GameName)
			}
			if err != nil {
				return err
			}
			if game.Stock < item.Quantity {
				return Errorf(EOUTOFSTOCK, "only %d copies of %s in stock, cart asks for %d",
					game.Stock, game.Name, item.Quantity)
			}
			games[item.GameID] = game
		}

		now := time.Now()
		sellerCredit := make(map[string]float64)
		invoice = models.Invoice{
			ID:        newID("inv"),
			UserID:    userID,
			SubTotal:  subtotal,
			Tax:       tax,
			Total:     total,
			CreatedAt: now,
		}

		for _, item := range cart.Items {
			game := games[item.GameID]
			if err := tx.Model(&models.Game{ID: game.ID}).
				Update("stock", game.Stock-item.Quantity).Error; err != nil {
				return err
			}

			lineSubtotal := item.EffectivePrice * float64(item.Quantity)
			sellerCredit[item.SellerID] += lineSubtotal

			for i := 0; i < item.Quantity; i++ {
				purchase := models.Purchase{
					UserID:     userID,
					GameID:     item.GameID,
					GameName:   item.GameName,
					SellerID:   item.SellerID,
					PricePaid:  item.EffectivePrice,
					Source:     "checkout",
					AcquiredAt: now,
				}
				if err := tx.Create(&purchase).Error; err != nil {
					return err
				}
			}

			invoice.Items = append(invoice.Items, models.InvoiceItem{
				GameID:         item.GameID,
				GameName:       item.GameName,
				SellerID:       item.SellerID,
				UnitPrice:      item.UnitPrice,
				EffectivePrice: item.EffectivePrice,
				Quantity:       item.Quantity,
			})
		}

		if err := tx.Model(&models.User{ID: userID}).
			Update("balance", buyer.Balance-total).Error; err != nil {
			return err
		}
		for sellerID, credit := range sellerCredit {
			seller, err := lockUser(tx, sellerID)
			if err != nil {
				return err
			}
			if err := tx.Model(&models.User{ID: sellerID}).
				Update("balance", seller.Balance+credit).Error; err != nil {
				return err
			}
			point := models.SalesPoint{SellerID: sellerID, Date: now, Amount: credit}
			if err := tx.Create(&point).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		if err := s.unlockQuiet(tx, userID, AchFirstPurchase); err != nil {
			return err
		}
		buyer.Balance -= total
		return s.checkHighRoller(tx, buyer)
	})
	if err != nil {
		if s.metrics != nil && ErrorCode(err) != "" {
			s.metrics.CheckoutsRejected.Inc()
		}
		return models.Invoice{}, err
	}

	if s.metrics != nil {
		s.metrics.CheckoutsCommitted.Inc()
		s.metrics.Revenue.Add(invoice.SubTotal)
		s.metrics.TaxCollected.Add(invoice.Tax)
	}
	s.notify("Order %s complete: $%.2f", invoice.ID, invoice.Total)
	return invoice, s.persistSession()
}

// CancelPurchase removes one owned copy and refunds price paid × the
// configured multiplier. The copy's seller is debited the price paid.
func (s *Store) CancelPurchase(userID, gameID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var refund float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		err := tx.Where("user_id = ? AND game_id = ?", userID, gameID).
			Order("id").First(&purchase).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Errorf(ENOTFOUND, "game %q is not in the purchase history", gameID)
		}
		if err != nil {
			return err
		}

		buyer, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		refund = purchase.PricePaid * s.cfg.RefundMultiplier
		if err := tx.Model(&models.User{ID: userID}).
			Update("balance", buyer.Balance+refund).Error; err != nil {
			return err
		}

		seller, err := lockUser(tx, purchase.SellerID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.User{ID: seller.ID}).
			Update("balance", seller.Balance-purchase.PricePaid).Error; err != nil {
			return err
		}

		if err := tx.Delete(&purchase).Error; err != nil {
			return err
		}
		buyer.Balance += refund
		return s.checkHighRoller(tx, buyer)
	})
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.Refunds.Inc()
	}
	return refund, s.persistSession()
}

// Purchases lists the user's library, oldest first.
func (s *Store) Purchases(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Invoices lists the user's receipts, newest first.
func (s *Store) Invoices(userID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
