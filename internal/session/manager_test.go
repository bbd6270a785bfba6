package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-portal/internal/catalog"
)

// bcrypt.MinCost keeps the hashing fast in tests.
func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(4)
	require.NoError(t, err)
	return m
}

func TestLoginDemoProfiles(t *testing.T) {
	m := newManager(t)

	u, ok := m.Login("12345", "9876543210")
	require.True(t, ok)
	assert.Equal(t, "Aarav Sharma", u.Name)
	assert.Equal(t, RoleStudent, u.Role)
	require.Len(t, u.CurrentBooks, 1)
	assert.Equal(t, 4, u.CurrentBooks[0].Book.ID)

	u, ok = m.Login("90001", "9000090000")
	require.True(t, ok)
	assert.Equal(t, RoleLibrarian, u.Role)
}

func TestLoginFailureIsUniform(t *testing.T) {
	m := newManager(t)

	_, ok := m.Login("12345", "0000000000")
	assert.False(t, ok)

	_, ok = m.Login("99999", "9876543210")
	assert.False(t, ok)
}

func TestBagIsPerUserAndLazy(t *testing.T) {
	m := newManager(t)

	b := m.Bag("12345")
	require.NotNil(t, b)
	assert.Same(t, b, m.Bag("12345"))
	assert.NotSame(t, b, m.Bag("90001"))
}

func TestLogoutDiscardsBag(t *testing.T) {
	m := newManager(t)

	book, ok := catalog.BaselineBook(1)
	require.True(t, ok)
	m.Bag("12345").Add(book)
	require.Equal(t, 1, m.Bag("12345").Len())

	m.Logout("12345")
	assert.Equal(t, 0, m.Bag("12345").Len())
}
