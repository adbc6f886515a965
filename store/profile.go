package store

import (
	"strings"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// UpdateProfile changes the display name and description.
func (s *Store) UpdateProfile(userID, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Errorf(EINVALID, "name is required")
	}
	user, err := s.User(userID)
	if err != nil {
		return err
	}
	updates := map[string]any{
		"name":        name,
		"description": description,
	}
	if err := s.db.Model(&models.User{ID: user.ID}).Updates(updates).Error; err != nil {
		return err
	}
	return s.persistSession()
}
