// Package store holds the authoritative local copy of the user collection.
//
// The store owns its slice exclusively: callers only ever see copies, and the
// collection changes only through Replace/ApplyCreate/ApplyUpdate/ApplyDelete,
// each fed by a confirmed service response. The store performs no I/O, so a
// failed remote call can never reach a mutating method and the collection
// stays byte-identical to its pre-call state.
//
// Invariant: no two entries share an ID, and an entry's ID is never changed
// here. Collection order is server list order followed by client-appended
// creations.
package store

import "github.com/siddharthpandey07/UserManage/internal/models"

type Store struct {
	users []models.User
}

func New() *Store {
	return &Store{users: []models.User{}}
}

// Replace swaps the whole collection for the server's list, preserving its
// order. Called only after a successful full fetch.
func (s *Store) Replace(users []models.User) {
	s.users = make([]models.User, len(users))
	copy(s.users, users)
}

// ApplyCreate appends the server-returned record. The ID in the response is
// authoritative even if the request carried none. If the ID is already
// present (a duplicate completion of the same create), the existing entry is
// replaced in place so IDs stay unique.
func (s *Store) ApplyCreate(u models.User) {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return
		}
	}
	s.users = append(s.users, u)
}

// ApplyUpdate replaces the entry whose ID matches u.ID with u. No matching
// entry is a no-op: the service confirmed the mutation, so the caller still
// treats it as a success.
func (s *Store) ApplyUpdate(u models.User) {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return
		}
	}
}

// ApplyDelete removes the entry with the given ID. Deleting an absent ID is
// a no-op, not an error.
func (s *Store) ApplyDelete(id int64) {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

// Users returns a copy of the collection in order.
func (s *Store) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the entry with the given ID, if present.
func (s *Store) Get(id int64) (models.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) Len() int {
	return len(s.users)
}
