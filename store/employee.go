package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

func validEmployeeRole(role models.EmployeeRole) bool {
	switch role {
	case models.EmployeeSupport, models.EmployeeInventory, models.EmployeeMarketing:
		return true
	}
	return false
}

// HireEmployee adds a staff member. Salaries are numeric and positive, so
// payroll can never come out NaN.
func (s *Store) HireEmployee(sellerID, name string, role models.EmployeeRole, salary float64) (models.Employee, error) {
	seller, err := s.User(sellerID)
	if err != nil {
		return models.Employee{}, err
	}
	if seller.Role != models.RoleSeller {
		return models.Employee{}, Errorf(EINVALID, "user %q is not a seller", sellerID)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Employee{}, Errorf(EINVALID, "employee name is required")
	}
	if !validEmployeeRole(role) {
		return models.Employee{}, Errorf(EINVALID, "unknown employee role %q", role)
	}
	if salary <= 0 {
		return models.Employee{}, Errorf(EINVALID, "salary must be positive, got %.2f", salary)
	}

	employee := models.Employee{
		ID:       newID("emp"),
		SellerID: sellerID,
		Name:     name,
		Role:     role,
		Salary:   salary,
		HiredAt:  time.Now(),
	}
	if err := s.db.Create(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *Store) FireEmployee(sellerID, employeeID string) error {
	res := s.db.Where("id = ? AND seller_id = ?", employeeID, sellerID).Delete(&models.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Errorf(ENOTFOUND, "no employee with id %q", employeeID)
	}
	return nil
}

// EditEmployee updates one staff record. Only the addressed row changes;
// colleagues are never touched.
func (s *Store) EditEmployee(sellerID, employeeID, name string, role models.EmployeeRole, salary float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Errorf(EINVALID, "employee name is required")
	}
	if !validEmployeeRole(role) {
		return Errorf(EINVALID, "unknown employee role %q", role)
	}
	if salary <= 0 {
		return Errorf(EINVALID, "salary must be positive, got %.2f", salary)
	}

	var employee models.Employee
	err := s.db.Where("id = ? AND seller_id = ?", employeeID, sellerID).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errorf(ENOTFOUND, "no employee with id %q", employeeID)
	}
	if err != nil {
		return err
	}
	return s.db.Model(&employee).Updates(map[string]any{
		"name":   name,
		"role":   role,
		"salary": salary,
	}).Error
}

// Employees lists the seller's staff in hire order.
func (s *Store) Employees(sellerID string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Where("seller_id = ?", sellerID).Order("hired_at").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Payroll is the seller's total annual salary commitment.
func (s *Store) Payroll(sellerID string) (float64, error) {
	employees, err := s.Employees(sellerID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range employees {
		total += e.Salary
	}
	return total, nil
}
