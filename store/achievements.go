package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

const (
	AchFirstPurchase = "first_purchase"
	AchReviewer      = "reviewer"
	AchHighRoller    = "high_roller"
	AchTrader        = "trader"
	AchGenerous      = "generous"
)

// defaultAchievements is the locked set every user starts with.
func defaultAchievements() []models.Achievement {
	return []models.Achievement{
		{Code: AchFirstPurchase, Name: "First Purchase", Description: "Buy your first game."},
		{Code: AchReviewer, Name: "Reviewer", Description: "Review a game."},
		{Code: AchHighRoller, Name: "High Roller", Description: "Have over $200 in your wallet."},
		{Code: AchTrader, Name: "Trader", Description: "Complete a trade with another user."},
		{Code: AchGenerous, Name: "Generous", Description: "Gift a game to another player."},
	}
}

// UnlockAchievement marks the achievement unlocked and announces it by name.
// Already-unlocked achievements are left alone with no announcement.
func (s *Store) UnlockAchievement(userID, code string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.unlockAchievement(tx, userID, code)
	})
	if err != nil {
		return err
	}
	return s.persistSession()
}

func (s *Store) unlockAchievement(tx *gorm.DB, userID, code string) error {
	var ach models.Achievement
	err := tx.Where("user_id = ? AND code = ?", userID, code).First(&ach).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errorf(ENOTFOUND, "achievement %q not found for user %q", code, userID)
	}
	if err != nil {
		return err
	}
	if ach.Unlocked {
		return nil
	}
	if err := tx.Model(&ach).Update("unlocked", true).Error; err != nil {
		return err
	}
	s.notify("Achievement Unlocked: %s", ach.Name)
	return nil
}

// unlockQuiet is unlockAchievement for flows where the user may carry no
// achievement set at all (the seeded seller, for one).
func (s *Store) unlockQuiet(tx *gorm.DB, userID, code string) error {
	err := s.unlockAchievement(tx, userID, code)
	if ErrorCode(err) == ENOTFOUND {
		return nil
	}
	return err
}

// checkHighRoller unlocks High Roller once a customer's balance passes $200.
func (s *Store) checkHighRoller(tx *gorm.DB, user models.User) error {
	if user.Balance <= 200 {
		return nil
	}
	return s.unlockQuiet(tx, user.ID, AchHighRoller)
}

// Achievements lists the user's badge set, locked and unlocked.
func (s *Store) Achievements(userID string) ([]models.Achievement, error) {
	var achs []models.Achievement
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&achs).Error; err != nil {
		return nil, err
	}
	return achs, nil
}
