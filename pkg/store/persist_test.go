package store

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/budget/pkg/domain"
	"path/filepath"
	"testing"
)

type brokenStore struct{}

func (brokenStore) Read() ([]*domain.Transaction, error) { return nil, errors.New("disk on fire") }
func (brokenStore) Write([]*domain.Transaction) error    { return errors.New("disk on fire") }

func TestLoadMissingFile(t *testing.T) {
	ledger, err := Load(NewFlatFile(filepath.Join(t.TempDir(), "nope.txt")))

	assert.ErrorIs(t, err, ErrNoData)
	require.NotNil(t, ledger)
	assert.Equal(t, 0, ledger.Len())
}

func TestLoadIOErrorGivesEmptyLedger(t *testing.T) {
	ledger, err := Load(brokenStore{})

	assert.NotNil(t, err)
	require.NotNil(t, ledger)
	assert.Equal(t, 0, ledger.Len())
}

func TestLoadDirectoryGivesEmptyLedger(t *testing.T) {
	ledger, err := Load(NewFlatFile(t.TempDir()))

	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, ErrNoData))
	assert.Equal(t, 0, ledger.Len())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	ledger := domain.NewLedger(sample()...)

	require.Nil(t, Save(NewFlatFile(path), ledger))

	loaded, err := Load(NewFlatFile(path))
	assert.Nil(t, err)
	assert.Equal(t, ledger.Transactions(), loaded.Transactions())
}

func TestSaveFailure(t *testing.T) {
	err := Save(NewFlatFile(filepath.Join(t.TempDir(), "missing-dir", "transactions.txt")), domain.NewLedger(sample()...))

	assert.NotNil(t, err)
}

func TestSaveBrokenStore(t *testing.T) {
	assert.NotNil(t, Save(brokenStore{}, domain.NewLedger()))
}
