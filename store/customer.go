package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// AddCustomer records a client in the seller's book.
func (s *Store) AddCustomer(sellerID, name string) (models.Customer, error) {
	seller, err := s.User(sellerID)
	if err != nil {
		return models.Customer{}, err
	}
	if seller.Role != models.RoleSeller {
		return models.Customer{}, Errorf(EINVALID, "user %q is not a seller", sellerID)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Customer{}, Errorf(EINVALID, "customer name is required")
	}

	customer := models.Customer{
		ID:       newID("cust"),
		SellerID: sellerID,
		Name:     name,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *Store) EditCustomer(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Errorf(EINVALID, "customer name is required")
	}
	var customer models.Customer
	err := s.db.First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errorf(ENOTFOUND, "no customer with id %q", id)
	}
	if err != nil {
		return err
	}
	return s.db.Model(&customer).Update("name", name).Error
}

func (s *Store) RemoveCustomer(id string) error {
	res := s.db.Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Errorf(ENOTFOUND, "no customer with id %q", id)
	}
	return nil
}

// Customers lists the seller's client book.
func (s *Store) Customers(sellerID string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("seller_id = ?", sellerID).Order("created_at").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
