package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// Deposit credits the wallet. The amount must be positive.
func (s *Store) Deposit(userID string, amount float64) error {
	if amount <= 0 {
		return Errorf(EINVALID, "deposit amount must be positive, got %.2f", amount)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		user.Balance += amount
		if err := tx.Model(&models.User{ID: user.ID}).Update("balance", user.Balance).Error; err != nil {
			return err
		}
		return s.checkHighRoller(tx, user)
	})
	if err != nil {
		return err
	}
	return s.persistSession()
}

// Withdraw debits the wallet, failing rather than going negative.
func (s *Store) Withdraw(userID string, amount float64) error {
	if amount <= 0 {
		return Errorf(EINVALID, "withdrawal amount must be positive, got %.2f", amount)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		if user.Balance < amount {
			return Errorf(EINSUFFICIENTFUNDS, "balance %.2f is below withdrawal of %.2f", user.Balance, amount)
		}
		return tx.Model(&models.User{ID: user.ID}).Update("balance", user.Balance-amount).Error
	})
	if err != nil {
		return err
	}
	return s.persistSession()
}

// SetBalance overwrites the wallet balance. Negative balances are rejected.
func (s *Store) SetBalance(userID string, balance float64) error {
	if balance < 0 {
		return Errorf(EINVALID, "balance cannot be negative")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		user.Balance = balance
		if err := tx.Model(&models.User{ID: user.ID}).Update("balance", balance).Error; err != nil {
			return err
		}
		return s.checkHighRoller(tx, user)
	})
	if err != nil {
		return err
	}
	return s.persistSession()
}

// WithdrawSellerFunds zeroes the seller's balance and returns the amount
// paid out. The operation settles immediately.
func (s *Store) WithdrawSellerFunds(sellerID string) (float64, error) {
	var paid float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, sellerID)
		if err != nil {
			return err
		}
		if user.Role != models.RoleSeller {
			return Errorf(EINVALID, "user %q is not a seller", sellerID)
		}
		paid = user.Balance
		return tx.Model(&models.User{ID: user.ID}).Update("balance", 0).Error
	})
	if err != nil {
		return 0, err
	}
	return paid, s.persistSession()
}

// lockUser fetches a user row inside tx, mapping the missing case to ENOTFOUND.
func lockUser(tx *gorm.DB, id string) (models.User, error) {
	var user models.User
	err := tx.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, Errorf(ENOTFOUND, "no account with id %q", id)
	}
	return user, err
}
