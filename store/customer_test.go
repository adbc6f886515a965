package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCustomer(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	c, err := s.AddCustomer("seller1", "Carol")
	require.NoError(t, err)

	customers, err := s.Customers("seller1")
	require.NoError(t, err)
	require.Len(t, customers, 3) // Alice, Bob, Carol
	assert.Equal(t, c.ID, customers[2].ID)
}

func TestAddCustomerValidation(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.AddCustomer("customer1", "Carol")
	assert.Equal(t, EINVALID, ErrorCode(err))
	_, err = s.AddCustomer("seller1", "  ")
	assert.Equal(t, EINVALID, ErrorCode(err))
}

func TestEditCustomerTouchesOnlyTarget(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.EditCustomer("cust-a", "Alice Cooper"))

	customers, err := s.Customers("seller1")
	require.NoError(t, err)
	names := map[string]string{}
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	assert.Equal(t, "Alice Cooper", names["cust-a"])
	assert.Equal(t, "Bob", names["cust-b"])
}

func TestRemoveCustomer(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	require.NoError(t, s.RemoveCustomer("cust-b"))

	customers, err := s.Customers("seller1")
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	err = s.RemoveCustomer("cust-b")
	assert.Equal(t, ENOTFOUND, ErrorCode(err))
}
