package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.UpdateProfile("customer1", "ReformedNoob", "Git gud arc complete."))

	u, err := s.User("customer1")
	require.NoError(t, err)
	assert.Equal(t, "ReformedNoob", u.Name)
	assert.Equal(t, "Git gud arc complete.", u.Description)
}

func TestUpdateProfileValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	assert.Equal(t, EINVALID, ErrorCode(s.UpdateProfile("customer1", "  ", "x")))
	assert.Equal(t, ENOTFOUND, ErrorCode(s.UpdateProfile("nobody", "Name", "x")))
}
