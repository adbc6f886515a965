package store

import (
	"time"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// Seed loads the demo storefront: one seller with staff and sales history,
// two customers, three games, a client book, and the supplier roster.
func (s *Store) Seed() error {
	users := []models.User{
		{
			ID:   "seller1",
			Name: "GameGods",
			Role: models.RoleSeller,
			Employees: []models.Employee{
				{ID: "emp1", Name: "John Doe", Role: models.EmployeeSupport, Salary: 30000, HiredAt: time.Now()},
				{ID: "emp2", Name: "Jane Smith", Role: models.EmployeeInventory, Salary: 35000, HiredAt: time.Now()},
			},
			SalesHistory: []models.SalesPoint{
				{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Amount: 120.50},
				{Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), Amount: 89.99},
			},
			LastLogin: time.Now(),
		},
		{
			ID:           "customer1",
			Name:         "NewbieNoob",
			Role:         models.RoleCustomer,
			Description:  "Just here to play!",
			Balance:      100,
			Wishlist:     []models.WishlistItem{{GameID: "game3"}},
			Achievements: defaultAchievements(),
			LastLogin:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "customer2",
			Name:         "ProGamer",
			Role:         models.RoleCustomer,
			Description:  "Speedruns and stuff.",
			Balance:      500,
			Wishlist:     []models.WishlistItem{{GameID: "game1"}},
			Achievements: defaultAchievements(),
			LastLogin:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	games := []models.Game{
		{
			ID: "game1", Name: "Cyberpunk 2078", Price: 59.99, SellerID: "seller1", Stock: 10,
			Reviews: []models.Review{{UserID: "customer1", UserName: "NewbieNoob", Rating: 5, Comment: "Glitchy but fun!"}},
		},
		{ID: "game2", Name: "Witcher 4: Wildest Hunt", Price: 69.99, SellerID: "seller1", Stock: 5},
		{ID: "game3", Name: "Star Citizen", Price: 45.00, SellerID: "seller1", Stock: 0},
	}
	if err := s.db.Create(&games).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{ID: "cust-a", Name: "Alice", SellerID: "seller1"},
		{ID: "cust-b", Name: "Bob", SellerID: "seller1"},
	}
	if err := s.db.Create(&customers).Error; err != nil {
		return err
	}

	suppliers := []models.Supplier{
		{ID: "sup1", Name: "Key Kings", Reliability: 0.9},
		{ID: "sup2", Name: "Digital Dreams Inc.", Reliability: 0.75},
		{ID: "sup3", Name: "Glitched Goods Co.", Reliability: 0.5},
	}
	return s.db.Create(&suppliers).Error
}
