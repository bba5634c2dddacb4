// Package store holds the ordered transaction collection, newest first.
// Operations return a new Store value so published snapshots stay immutable
// while a writer prepares the next state.
package store

import "duitku/internal/models"

// Store is an ordered sequence of transactions, newest first.
// The zero value is an empty store.
type Store struct {
	items []models.Transaction
}

// New creates a store over the given transactions. The slice is copied.
func New(items []models.Transaction) Store {
	copied := make([]models.Transaction, len(items))
	copy(copied, items)
	return Store{items: copied}
}

// Insert prepends a transaction and returns the resulting store.
func (s Store) Insert(txn models.Transaction) Store {
	next := make([]models.Transaction, 0, len(s.items)+1)
	next = append(next, txn)
	next = append(next, s.items...)
	return Store{items: next}
}

// Remove deletes the transaction with the given id. The removed transaction
// and true are returned on success; removing an unknown id returns the store
// unchanged and false, which callers treat as a benign not-found.
func (s Store) Remove(id string) (Store, models.Transaction, bool) {
	for i, txn := range s.items {
		if txn.ID == id {
			next := make([]models.Transaction, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			next = append(next, s.items[i+1:]...)
			return Store{items: next}, txn, true
		}
	}
	return s, models.Transaction{}, false
}

// Find returns the transaction with the given id.
func (s Store) Find(id string) (models.Transaction, bool) {
	for _, txn := range s.items {
		if txn.ID == id {
			return txn, true
		}
	}
	return models.Transaction{}, false
}

// List returns a copy of the ordered sequence, newest first.
func (s Store) List() []models.Transaction {
	copied := make([]models.Transaction, len(s.items))
	copy(copied, s.items)
	return copied
}

// Len returns the number of stored transactions.
func (s Store) Len() int {
	return len(s.items)
}
