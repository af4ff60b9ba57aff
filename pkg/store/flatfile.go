package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"github.com/voidshard/budget/pkg/domain"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	// Delimiter separates fields on a line. It is not escaped, so a field
	// containing it will not survive a round trip.
	Delimiter = "|"

	fieldCount = 5
)

// FlatFile stores one transaction per line as date|category|description|kind|amount.
type FlatFile struct {
	filename string
	skipped  int
}

func NewFlatFile(filename string) *FlatFile {
	return &FlatFile{filename: filename}
}

// Skipped returns how many lines the last Read dropped as corrupt.
func (f *FlatFile) Skipped() int {
	return f.skipped
}

// Read loads every well formed line of the file. A missing file gives
// ErrNoData. Corrupt lines are dropped and counted, see Skipped.
func (f *FlatFile) Read() ([]*domain.Transaction, error) {
	f.skipped = 0

	fh, err := os.Open(f.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", f.filename, ErrNoData)
	}
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	txns, skipped, err := decodeLines(fh)
	f.skipped = skipped
	return txns, err
}

// Write replaces the file contents with txns.
func (f *FlatFile) Write(txns []*domain.Transaction) error {
	return os.WriteFile(f.filename, encodeLines(txns), 0644)
}

// FormatLine renders a transaction as a single line, without line ending.
// The amount is always written without a sign.
func FormatLine(t *domain.Transaction) string {
	return strings.Join([]string{
		t.Date,
		t.Category,
		t.Description,
		string(t.Kind),
		strconv.FormatFloat(math.Abs(t.Amount), 'f', -1, 64),
	}, Delimiter)
}

// ParseLine parses a single line. It reports false when the line does not
// have exactly five fields or the amount is not a finite number. The kind
// is not checked.
func ParseLine(line string) (*domain.Transaction, bool) {
	parts := strings.Split(strings.TrimSpace(line), Delimiter)
	if len(parts) != fieldCount {
		return nil, false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, false
	}

	return &domain.Transaction{
		Date:        parts[0],
		Category:    parts[1],
		Description: parts[2],
		Kind:        domain.Kind(parts[3]),
		Amount:      math.Abs(amount),
	}, true
}

func encodeLines(txns []*domain.Transaction) []byte {
	buf := &bytes.Buffer{}
	for _, t := range txns {
		buf.WriteString(FormatLine(t))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func decodeLines(r io.Reader) ([]*domain.Transaction, int, error) {
	txns := []*domain.Transaction{}
	skipped := 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			t, ok := ParseLine(line)
			if ok {
				txns = append(txns, t)
			} else {
				skipped++
			}
		}
		if err == io.EOF {
			return txns, skipped, nil
		}
		if err != nil {
			return txns, skipped, err
		}
	}
}
