package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// Register creates a user and makes them the active session. Customers open
// with the configured starter balance; every new user gets the locked
// achievement set.
func (s *Store) Register(name string, role models.Role) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, Errorf(EINVALID, "name is required")
	}
	if role != models.RoleSeller && role != models.RoleCustomer {
		return models.User{}, Errorf(EINVALID, "unknown role %q", role)
	}

	user := models.User{
		ID:           newID("user"),
		Name:         name,
		Role:         role,
		LastLogin:    time.Now(),
		Achievements: defaultAchievements(),
	}
	if role == models.RoleCustomer {
		user.Balance = s.cfg.StarterBalance
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	s.setCurrentUser(user.ID)
	if err := s.persistSession(); err != nil {
		return models.User{}, err
	}
	return s.User(user.ID)
}

// Login is an unauthenticated ID lookup. The first login of a UTC day also
// credits the daily bonus.
func (s *Store) Login(id string) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, Errorf(ENOTFOUND, "no account with id %q", id)
	}
	if err != nil {
		return models.User{}, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if user.LastLogin.UTC().Truncate(24 * time.Hour).Before(today) {
		updates := map[string]any{
			"balance":    user.Balance + s.cfg.DailyBonus,
			"last_login": time.Now(),
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return models.User{}, err
		}
		s.notify("Welcome back! Here's a daily login bonus of $%.0f!", s.cfg.DailyBonus)
	} else if err := s.db.Model(&user).Update("last_login", time.Now()).Error; err != nil {
		return models.User{}, err
	}

	s.setCurrentUser(user.ID)
	if err := s.persistSession(); err != nil {
		return models.User{}, err
	}
	return s.User(user.ID)
}

// Logout ends the session: the user's cart is emptied and the persisted
// snapshot removed.
func (s *Store) Logout() error {
	s.currentMu.Lock()
	id := s.currentUserID
	s.currentUserID = ""
	s.currentMu.Unlock()

	if id != "" {
		var cart models.Cart
		if err := s.db.Where("user_id = ?", id).First(&cart).Error; err == nil {
			if err := s.db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
	}
	if s.sessions != nil {
		return s.sessions.Clear()
	}
	return nil
}

// User fetches a user with achievements and wishlist loaded.
func (s *Store) User(id string) (models.User, error) {
	var user models.User
	err := s.db.Preload("Achievements").Preload("Wishlist").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, Errorf(ENOTFOUND, "no account with id %q", id)
	}
	return user, err
}

// CurrentUser returns the active session's user, ok=false when logged out.
func (s *Store) CurrentUser() (models.User, bool, error) {
	s.currentMu.Lock()
	id := s.currentUserID
	s.currentMu.Unlock()
	if id == "" {
		return models.User{}, false, nil
	}
	u, err := s.User(id)
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *Store) setCurrentUser(id string) {
	s.currentMu.Lock()
	s.currentUserID = id
	s.currentMu.Unlock()
}

// persistSession writes through the active user snapshot after any mutation
// that touches the profile, wallet, or achievements.
func (s *Store) persistSession() error {
	if s.sessions == nil {
		return nil
	}
	s.currentMu.Lock()
	id := s.currentUserID
	s.currentMu.Unlock()
	if id == "" {
		return nil
	}
	user, err := s.User(id)
	if err != nil {
		return err
	}
	return s.sessions.Save(user)
}
