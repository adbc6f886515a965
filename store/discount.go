package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// CreateDiscount registers a percentage-off code. Codes collide
// case-insensitively. Scope is a game id or models.ScopeAll.
func (s *Store) CreateDiscount(code, scope string, percentage float64) (models.Discount, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Discount{}, Errorf(EINVALID, "discount code is required")
	}
	if percentage <= 0 || percentage > 100 {
		return models.Discount{}, Errorf(EINVALID, "percentage must be in (0, 100], got %.2f", percentage)
	}
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return models.Discount{}, Errorf(EINVALID, "discount scope is required")
	}
	if !strings.EqualFold(scope, models.ScopeAll) {
		if _, err := s.Game(scope); err != nil {
			return models.Discount{}, err
		}
	} else {
		scope = models.ScopeAll
	}

	discount := models.Discount{
		Code:       code,
		CodeKey:    strings.ToLower(code),
		Scope:      scope,
		Percentage: percentage,
	}

	var existing models.Discount
	err := s.db.Where("code_key = ?", discount.CodeKey).First(&existing).Error
	if err == nil {
		return models.Discount{}, Errorf(EDUPLICATECODE, "a discount with code %q already exists", code)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Discount{}, err
	}

	if err := s.db.Create(&discount).Error; err != nil {
		return models.Discount{}, err
	}
	return discount, nil
}

// Discounts lists every registered rule.
func (s *Store) Discounts() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := s.db.Order("created_at").Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (s *Store) findDiscount(code string) (models.Discount, error) {
	var discount models.Discount
	err := s.db.Where("code_key = ?", strings.ToLower(strings.TrimSpace(code))).First(&discount).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Discount{}, Errorf(ENOTFOUND, "unknown discount code %q", code)
	}
	return discount, err
}
