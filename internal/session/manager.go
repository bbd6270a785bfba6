// Package session tracks who is logged in and owns each user's bag. A
// session is constructed at login from a fixed demo profile and discarded
// at logout; the bag is the only state that outlives a single request.
package session

import (
	"sync"

	"github.com/iliyamo/library-portal/internal/bag"
	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/utils"
)

type account struct {
	user     model.User
	credHash string // bcrypt hash of the mobile number
}

// Manager matches credentials against the demo profiles and hands out
// per-user bags. Credentials are bcrypt-hashed once at construction so the
// plain mobile number never sits in a comparable field at runtime.
type Manager struct {
	mu       sync.Mutex
	accounts map[string]account
	bags     map[string]*bag.Bag
}

// NewManager hashes the demo credentials with the given bcrypt cost and
// returns a ready manager.
func NewManager(bcryptCost int) (*Manager, error) {
	m := &Manager{
		accounts: make(map[string]account),
		bags:     make(map[string]*bag.Bag),
	}
	for _, u := range demoProfiles() {
		hash, err := utils.HashPassword(u.MobileNumber, bcryptCost)
		if err != nil {
			return nil, err
		}
		m.accounts[u.LibraryID] = account{user: u, credHash: hash}
	}
	return m, nil
}

// Login verifies a library id and mobile number pair. On success it returns
// the matching profile; the boolean is false for unknown ids and wrong
// numbers alike so callers cannot distinguish the two.
func (m *Manager) Login(libraryID, mobileNumber string) (model.User, bool) {
	m.mu.Lock()
	acct, ok := m.accounts[libraryID]
	m.mu.Unlock()
	if !ok || !utils.VerifyPassword(acct.credHash, mobileNumber) {
		return model.User{}, false
	}
	return acct.user, true
}

// User returns the profile for an authenticated library id.
func (m *Manager) User(libraryID string) (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.accounts[libraryID]
	return acct.user, ok
}

// Bag returns the user's bag, creating an empty one on first use.
func (m *Manager) Bag(libraryID string) *bag.Bag {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bags[libraryID]
	if !ok {
		b = bag.New()
		m.bags[libraryID] = b
	}
	return b
}

// Logout discards the user's session state. The bag is emptied; the demo
// profile itself is static and survives for the next login.
func (m *Manager) Logout(libraryID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bags, libraryID)
}
