package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// ProposeTrade offers one owned game for one of the target's owned games.
// Both sides must own what they bring to the table.
func (s *Store) ProposeTrade(fromUserID, toUserID, offeredGameID, requestedGameID string) (models.TradeRequest, error) {
	if fromUserID == toUserID {
		return models.TradeRequest{}, Errorf(EINVALID, "cannot trade with yourself")
	}
	from, err := s.User(fromUserID)
	if err != nil {
		return models.TradeRequest{}, err
	}
	if _, err := s.User(toUserID); err != nil {
		return models.TradeRequest{}, err
	}
	if err := s.mustOwn(fromUserID, offeredGameID, "proposer"); err != nil {
		return models.TradeRequest{}, err
	}
	if err := s.mustOwn(toUserID, requestedGameID, "recipient"); err != nil {
		return models.TradeRequest{}, err
	}

	trade := models.TradeRequest{
		ID:              newID("trade"),
		FromUserID:      from.ID,
		FromUserName:    from.Name,
		ToUserID:        toUserID,
		OfferedGameID:   offeredGameID,
		RequestedGameID: requestedGameID,
		Status:          models.TradePending,
		CreatedAt:       time.Now(),
	}
	if err := s.db.Create(&trade).Error; err != nil {
		return models.TradeRequest{}, err
	}
	return trade, nil
}

// RespondToTrade lets the recipient settle a pending request. Acceptance
// swaps ownership of both games in one transaction and unlocks Trader for
// both parties.
func (s *Store) RespondToTrade(userID, tradeID string, accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var trade models.TradeRequest
		err := tx.First(&trade, "id = ?", tradeID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Errorf(ENOTFOUND, "no trade request with id %q", tradeID)
		}
		if err != nil {
			return err
		}
		if trade.ToUserID != userID {
			return Errorf(EINVALID, "only the trade recipient can respond")
		}
		if trade.Status != models.TradePending {
			return Errorf(EINVALID, "trade is already %s", trade.Status)
		}

		status := models.TradeDeclined
		if accept {
			status = models.TradeAccepted
			if err := transferPurchase(tx, trade.FromUserID, trade.ToUserID, trade.OfferedGameID); err != nil {
				return err
			}
			if err := transferPurchase(tx, trade.ToUserID, trade.FromUserID, trade.RequestedGameID); err != nil {
				return err
			}
			if err := s.unlockQuiet(tx, trade.FromUserID, AchTrader); err != nil {
				return err
			}
			if err := s.unlockQuiet(tx, trade.ToUserID, AchTrader); err != nil {
				return err
			}
		}
		return tx.Model(&trade).Update("status", status).Error
	})
	if err != nil {
		return err
	}

	if accept && s.metrics != nil {
		s.metrics.TradesAccepted.Inc()
	}
	return s.persistSession()
}

// TradeRequests lists requests involving the user, newest first.
func (s *Store) TradeRequests(userID string) ([]models.TradeRequest, error) {
	var trades []models.TradeRequest
	if err := s.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *Store) mustOwn(userID, gameID, who string) error {
	var count int64
	if err := s.db.Model(&models.Purchase{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return Errorf(EINVALID, "trade %s does not own game %q", who, gameID)
	}
	return nil
}

// transferPurchase moves one owned copy between users inside tx.
func transferPurchase(tx *gorm.DB, fromUserID, toUserID, gameID string) error {
	var purchase models.Purchase
	err := tx.Where("user_id = ? AND game_id = ?", fromUserID, gameID).
		Order("id").First(&purchase).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errorf(EINVALID, "user %q no longer owns game %q", fromUserID, gameID)
	}
	if err != nil {
		return err
	}
	return tx.Model(&purchase).Updates(map[string]any{
		"user_id": toUserID,
		"source":  "trade",
	}).Error
}
