package domain

import (
	"encoding/json"
)

// Kind is the direction of a transaction, persisted as a single character tag.
type Kind string

const (
	Income  Kind = "I"
	Expense Kind = "E"
)

// Valid reports whether k is one of the two known tags.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	}
	return string(k)
}

// Transaction is one income or expense entry. Amount is never negative,
// the direction lives in Kind.
type Transaction struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Kind        Kind    `json:"kind"`
	Amount      float64 `json:"amount"`
}

func (t *Transaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}
