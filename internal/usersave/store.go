// Package usersave implements the legacy save-user endpoint's backing store:
// a JSON file holding an append-only list of submitted user records. It is
// kept as an alternate path and is not consulted by the core auth flow.
package usersave

import (
	"fmt"
	"os"
	"sync"

	"github.com/avoronov/newshub/internal/filex"
)

// UserRecord is the payload the endpoint accepts, stored verbatim.
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type document struct {
	Users []UserRecord `json:"users"`
}

// Store appends user records to a JSON document on disk. The whole document
// is rewritten per append; the mutex keeps concurrent handler invocations
// from interleaving the read-modify-write.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append adds rec to the document, creating the file on first use.
func (s *Store) Append(rec UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc document
	if err := filex.ReadJSON(s.path, &doc); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read user file: %w", err)
	}

	doc.Users = append(doc.Users, rec)

	if err := filex.WriteJSON(s.path, &doc); err != nil {
		return fmt.Errorf("write user file: %w", err)
	}

	return nil
}

// List returns the stored records; a missing file yields an empty list.
func (s *Store) List() ([]UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc document
	if err := filex.ReadJSON(s.path, &doc); err != nil {
		if os.IsNotExist(err) {
			return []UserRecord{}, nil
		}
		return nil, fmt.Errorf("read user file: %w", err)
	}

	return doc.Users, nil
}
