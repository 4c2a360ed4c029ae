// Package storage persists the expense collections as whole JSON documents
// under fixed keys.
package storage

import (
	"context"
	"errors"
)

// Keys of the persisted collections.
const (
	KeyExpenses = "expenses"
	KeyBudgets  = "budgets"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("not found")

// KeyValue is the persistence port. Put overwrites the whole value.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
