package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	msg, err := s.SendMessage("customer1", "anyone up for co-op?")
	require.NoError(t, err)
	assert.Equal(t, "NewbieNoob", msg.UserName)

	msgs, err := s.Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "anyone up for co-op?", msgs[0].Text)
}

func TestSendMessageValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.SendMessage("customer1", "   ")
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.SendMessage("nobody", "hello")
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestSendNotificationReportsFailure(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	assert.Equal(t, EINVALID, ErrorCode(s.SendNotification("")))
	assert.NoError(t, s.SendNotification("Flash sale at noon!"))
}
