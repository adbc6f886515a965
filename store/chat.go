package store

import (
	"strings"
	"time"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// SendMessage appends to the community chat. Sends either succeed or fail
// with a reason; there is no silent drop.
func (s *Store) SendMessage(userID, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, Errorf(EINVALID, "message text is required")
	}
	user, err := s.User(userID)
	if err != nil {
		return models.ChatMessage{}, err
	}

	msg := models.ChatMessage{
		ID:        newID("msg"),
		UserID:    user.ID,
		UserName:  user.Name,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// Messages returns the chat log, oldest first.
func (s *Store) Messages() ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := s.db.Order("created_at").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendNotification broadcasts a display message to the storefront.
func (s *Store) SendNotification(text string) error {
	if strings.TrimSpace(text) == "" {
		return Errorf(EINVALID, "notification text is required")
	}
	s.notify("%s", text)
	return nil
}
