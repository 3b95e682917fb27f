package app

import (
	"os"
	"strings"
	"sync"
)

// AddressStore persists exactly one string: the user's saved address.
// An absent file means first-time use. Writes go to a temp file first
// and are renamed into place so a crash never leaves a torn file.
type AddressStore struct {
	mu   sync.RWMutex
	path string
}

func NewAddressStore(path string) *AddressStore {
	return &AddressStore{path: path}
}

// Load returns the saved address. The error is os.ErrNotExist (wrapped)
// when no address has been saved yet.
func (s *AddressStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save replaces the saved address.
func (s *AddressStore) Save(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + TmpSuffix
	if err := os.WriteFile(tmp, []byte(address+"\n"), FilePermissions); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the saved address. Clearing an absent address is not an
// error.
func (s *AddressStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
