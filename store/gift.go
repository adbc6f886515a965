package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// GiftGame buys a copy for another player. The sender pays the game price
// plus the configured service fee; the fee is retained by the platform. The
// copy comes out of catalog stock and lands in the recipient's library.
func (s *Store) GiftGame(fromUserID, toUserID, gameID, message string) (models.Gift, error) {
	if fromUserID == toUserID {
		return models.Gift{}, Errorf(EINVALID, "cannot gift a game to yourself")
	}
	sender, err := s.User(fromUserID)
	if err != nil {
		return models.Gift{}, err
	}
	recipient, err := s.User(toUserID)
	if err != nil {
		return models.Gift{}, err
	}
	game, err := s.Game(gameID)
	if err != nil {
		return models.Gift{}, err
	}

	fee := game.Price * s.cfg.GiftFeeRate
	totalCost := game.Price + fee

	s.mu.Lock()
	defer s.mu.Unlock()

	var gift models.Gift
	err = s.db.Transaction(func(tx *gorm.DB) error {
		liveSender, err := lockUser(tx, fromUserID)
		if err != nil {
			return err
		}
		if liveSender.Balance < totalCost {
			return Errorf(EINSUFFICIENTFUNDS, "gifting %s costs %.2f (incl. %.2f fee), balance is %.2f",
				game.Name, totalCost, fee, liveSender.Balance)
		}

		var liveGame models.Game
		if err := tx.First(&liveGame, "id = ?", gameID).Error; err != nil {
			return err
		}
		if liveGame.Stock <= 0 {
			return Errorf(EOUTOFSTOCK, "%s is out of stock", game.Name)
		}
		if err := tx.Model(&models.Game{ID: gameID}).
			Update("stock", liveGame.Stock-1).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{ID: fromUserID}).
			Update("balance", liveSender.Balance-totalCost).Error; err != nil {
			return err
		}
		seller, err := lockUser(tx, game.SellerID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.User{ID: seller.ID}).
			Update("balance", seller.Balance+game.Price).Error; err != nil {
			return err
		}

		now := time.Now()
		purchase := models.Purchase{
			UserID:     toUserID,
			GameID:     game.ID,
			GameName:   game.Name,
			SellerID:   game.SellerID,
			PricePaid:  game.Price,
			Source:     "gift",
			AcquiredAt: now,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		gift = models.Gift{
			ID:           newID("gift"),
			FromUserID:   sender.ID,
			FromUserName: sender.Name,
			ToUserID:     recipient.ID,
			ToUserName:   recipient.Name,
			GameID:       game.ID,
			GameName:     game.Name,
			Message:      message,
			Fee:          fee,
			CreatedAt:    now,
		}
		if err := tx.Create(&gift).Error; err != nil {
			return err
		}
		return s.unlockQuiet(tx, fromUserID, AchGenerous)
	})
	if err != nil {
		return models.Gift{}, err
	}

	if s.metrics != nil {
		s.metrics.GiftsSent.Inc()
	}
	s.notify("%s sent %s a gift: %s", sender.Name, recipient.Name, game.Name)
	return gift, s.persistSession()
}

// Gifts lists gifts sent to or by the user, newest first.
func (s *Store) Gifts(userID string) ([]models.Gift, error) {
	var gifts []models.Gift
	if err := s.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}
