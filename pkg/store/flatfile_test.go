package store

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/budget/pkg/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sample() []*domain.Transaction {
	return []*domain.Transaction{
		{Date: "2025-01-01", Category: "Food", Description: "lunch", Kind: domain.Expense, Amount: 20},
		{Date: "2025-01-02", Category: "Salary", Description: "pay", Kind: domain.Income, Amount: 1000},
		{Date: "2025-01-03", Category: "Food", Description: "", Kind: domain.Expense, Amount: 30.25},
	}
}

func TestFlatFileRoundTrip(t *testing.T) {
	ff := NewFlatFile(filepath.Join(t.TempDir(), "transactions.txt"))

	err := ff.Write(sample())
	require.Nil(t, err)

	txns, err := ff.Read()
	assert.Nil(t, err)
	assert.Equal(t, sample(), txns)
	assert.Equal(t, 0, ff.Skipped())
}

func TestFlatFileWriteFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	ff := NewFlatFile(path)

	err := ff.Write([]*domain.Transaction{
		{Date: "2025-01-01", Category: "Food", Description: "lunch", Kind: domain.Expense, Amount: -20.5},
		{Date: "2025-01-02", Category: "Salary", Description: "pay", Kind: domain.Income, Amount: 1000},
	})
	require.Nil(t, err)

	data, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, "2025-01-01|Food|lunch|E|20.5\n2025-01-02|Salary|pay|I|1000\n", string(data))
}

func TestFlatFileWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	require.Nil(t, os.WriteFile(path, []byte("old|old|old|E|1\nold|old|old|E|2\n"), 0644))
	ff := NewFlatFile(path)

	err := ff.Write(sample()[:1])
	require.Nil(t, err)

	data, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, "2025-01-01|Food|lunch|E|20\n", string(data))
}

func TestFlatFileSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	content := "2025-01-01|Food|lunch|E|20\n" +
		"2025-01-01|Food|lunch|E\n" +
		"2025-01-01|Food|lunch|E|abc\n" +
		"2025-01-01|Food|lunch|with|pipe|E|5\n" +
		"\n" +
		"2025-01-02|Rent|flat|E|-700\n" +
		"2025-01-03|Odd|foreign|X|3\n"
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	ff := NewFlatFile(path)

	txns, err := ff.Read()

	assert.Nil(t, err)
	assert.Equal(t, []*domain.Transaction{
		{Date: "2025-01-01", Category: "Food", Description: "lunch", Kind: domain.Expense, Amount: 20},
		{Date: "2025-01-02", Category: "Rent", Description: "flat", Kind: domain.Expense, Amount: 700},
		{Date: "2025-01-03", Category: "Odd", Description: "foreign", Kind: domain.Kind("X"), Amount: 3},
	}, txns)
	assert.Equal(t, 4, ff.Skipped())
}

func TestFlatFileLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	long := []*domain.Transaction{
		{Date: "2025-01-01", Category: "Food", Description: "lunch", Kind: domain.Expense, Amount: 20},
		{Date: "2025-01-02", Category: strings.Repeat("c", 40000), Description: strings.Repeat("d", 40000), Kind: domain.Expense, Amount: 5},
	}
	ff := NewFlatFile(path)
	require.Nil(t, ff.Write(long))

	txns, err := ff.Read()

	assert.Nil(t, err)
	assert.Equal(t, long, txns)
}

func TestFlatFileSkipsLongCorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	content := "2025-01-01|Food|lunch|E|20\n" +
		strings.Repeat("x", 200000) + "\n" +
		"2025-01-02|Rent|flat|E|700"
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	ff := NewFlatFile(path)

	txns, err := ff.Read()

	assert.Nil(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "Rent", txns[1].Category)
	assert.Equal(t, 1, ff.Skipped())
}

func TestFlatFileMissing(t *testing.T) {
	ff := NewFlatFile(filepath.Join(t.TempDir(), "nope.txt"))

	txns, err := ff.Read()

	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, txns)
}

func TestParseLine(t *testing.T) {
	tx, ok := ParseLine("2025-01-01|Food|lunch|E| -20 \r")
	require.True(t, ok)
	assert.Equal(t, 20.0, tx.Amount)

	for _, line := range []string{"", "a|b|c|d", "a|b|c|d|e|f", "a|b|c|d|NaN", "a|b|c|d|Inf"} {
		_, ok := ParseLine(line)
		assert.False(t, ok, line)
	}
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(&domain.Transaction{Date: "2025-01-01", Category: "Food", Description: "x", Kind: domain.Expense, Amount: -0.1})

	assert.Equal(t, "2025-01-01|Food|x|E|0.1", line)
}
