package store

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/budget/pkg/domain"
	"path/filepath"
	"testing"
)

func TestJSONFileRoundTrip(t *testing.T) {
	jf := NewJSONFile(filepath.Join(t.TempDir(), "test.json"))

	err := jf.Write(sample())
	require.Nil(t, err)

	txns, err := jf.Read()
	assert.Nil(t, err)
	assert.Equal(t, sample(), txns)
}

func TestJSONFileWriteDropsSign(t *testing.T) {
	jf := NewJSONFile(filepath.Join(t.TempDir(), "test.json"))
	in := &domain.Transaction{Date: "2025-01-01", Kind: domain.Expense, Amount: -5}

	require.Nil(t, jf.Write([]*domain.Transaction{in}))

	txns, err := jf.Read()
	assert.Nil(t, err)
	assert.Equal(t, 5.0, txns[0].Amount)
	assert.Equal(t, -5.0, in.Amount)
}

func TestJSONFileMissing(t *testing.T) {
	jf := NewJSONFile(filepath.Join(t.TempDir(), "nope.json"))

	_, err := jf.Read()

	assert.ErrorIs(t, err, ErrNoData)
}
