package store

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/voidshard/budget/pkg/crypto"
	"github.com/voidshard/budget/pkg/domain"
	"io/fs"
	"os"
)

// SealedFile holds the flat file text encrypted and signed, so the ledger
// can be copied somewhere it should not be readable or editable.
type SealedFile struct {
	filename string
	keys     crypto.Keys
	skipped  int
}

func NewSealedFile(filename string, keys crypto.Keys) *SealedFile {
	return &SealedFile{filename: filename, keys: keys}
}

func (f *SealedFile) Skipped() int {
	return f.skipped
}

func (f *SealedFile) Write(txns []*domain.Transaction) error {
	sealed, err := crypto.Seal(encodeLines(txns), f.keys)
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, []byte(sealed), 0600)
}

func (f *SealedFile) Read() ([]*domain.Transaction, error) {
	f.skipped = 0

	data, err := os.ReadFile(f.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", f.filename, ErrNoData)
	}
	if err != nil {
		return nil, err
	}

	plain, err := crypto.Open(string(data), f.keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.filename, err)
	}

	txns, skipped, err := decodeLines(bytes.NewReader(plain))
	f.skipped = skipped
	return txns, err
}
