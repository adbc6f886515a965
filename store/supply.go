package store

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// OrderStock places a restock order with a supplier and waits out the
// configured lead time. Delivery is deterministic: received units are
// floor(quantity × reliability). The call always settles — either with the
// delivered order, or with an error after marking the order cancelled when
// the context ends first.
func (s *Store) OrderStock(ctx context.Context, sellerID, supplierID, gameID string, quantity int) (models.StockOrder, error) {
	if quantity <= 0 {
		return models.StockOrder{}, Errorf(EINVALID, "quantity must be positive, got %d", quantity)
	}
	seller, err := s.User(sellerID)
	if err != nil {
		return models.StockOrder{}, err
	}
	if seller.Role != models.RoleSeller {
		return models.StockOrder{}, Errorf(EINVALID, "user %q is not a seller", sellerID)
	}

	var supplier models.Supplier
	err = s.db.First(&supplier, "id = ?", supplierID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StockOrder{}, Errorf(ENOTFOUND, "no supplier with id %q", supplierID)
	}
	if err != nil {
		return models.StockOrder{}, err
	}
	game, err := s.Game(gameID)
	if err != nil {
		return models.StockOrder{}, err
	}

	order := models.StockOrder{
		ID:         newID("restock"),
		SellerID:   sellerID,
		SupplierID: supplierID,
		GameID:     gameID,
		Requested:  quantity,
		Status:     models.StockOrderPlaced,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.StockOrder{}, err
	}

	if s.cfg.SupplierLeadTime > 0 {
		timer := time.NewTimer(s.cfg.SupplierLeadTime)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			_ = s.db.Model(&order).Update("status", models.StockOrderCancelled).Error
			return models.StockOrder{}, ctx.Err()
		}
	}

	received := int(math.Floor(float64(quantity) * supplier.Reliability))

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var liveGame models.Game
		if err := tx.First(&liveGame, "id = ?", gameID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Game{ID: gameID}).
			Update("stock", liveGame.Stock+received).Error; err != nil {
			return err
		}
		return tx.Model(&order).Updates(map[string]any{
			"received":     received,
			"status":       models.StockOrderDelivered,
			"delivered_at": time.Now(),
		}).Error
	})
	if err != nil {
		return models.StockOrder{}, err
	}

	if s.metrics != nil {
		s.metrics.StockUnitsReceived.Add(float64(received))
	}
	s.notify("Order placed with %s. Expected %d, received %d copies of %s.",
		supplier.Name, quantity, received, game.Name)

	order.Received = received
	order.Status = models.StockOrderDelivered
	return order, nil
}

// Suppliers lists the supplier roster.
func (s *Store) Suppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Order("id").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// StockOrders lists a seller's restock orders, newest first.
func (s *Store) StockOrders(sellerID string) ([]models.StockOrder, error) {
	var orders []models.StockOrder
	if err := s.db.Where("seller_id = ?", sellerID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
