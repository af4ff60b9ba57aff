package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/voidshard/budget/pkg/domain"
	"io/fs"
	"math"
	"os"
)

// JSONFile keeps the ledger as a single JSON array.
type JSONFile struct {
	filename string
}

func NewJSONFile(filename string) *JSONFile {
	return &JSONFile{filename: filename}
}

func (f *JSONFile) Write(txns []*domain.Transaction) error {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		c := *t
		c.Amount = math.Abs(c.Amount)
		out = append(out, c)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, data, 0644)
}

func (f *JSONFile) Read() ([]*domain.Transaction, error) {
	data, err := os.ReadFile(f.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", f.filename, ErrNoData)
	}
	if err != nil {
		return nil, err
	}

	txns := []*domain.Transaction{}
	err = json.Unmarshal(data, &txns)
	if err != nil {
		return nil, err
	}
	for _, t := range txns {
		t.Amount = math.Abs(t.Amount)
	}
	return txns, nil
}
