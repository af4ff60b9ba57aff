package store

import (
	"errors"
	"github.com/voidshard/budget/pkg/domain"
)

// ErrNoData is returned by readers when there is nothing stored yet.
var ErrNoData = errors.New("no existing data")

type Store interface {
	Write([]*domain.Transaction) error
}

type Reader interface {
	Read() ([]*domain.Transaction, error)
}

// ReadWriter is a store a ledger can be loaded from and saved back to.
type ReadWriter interface {
	Reader
	Store
}
