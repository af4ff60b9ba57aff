package entry

import (
	"bufio"
	"fmt"
	"github.com/voidshard/budget/pkg/domain"
	"io"
	"strings"
)

// Prompter asks questions on out and reads the answers, one per line, from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes to the prompter's output.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Line shows prompt and returns the next line of input without its line
// ending. io.EOF is returned once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// last answer without a trailing newline
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask repeats prompt until parse accepts the answer.
func ask[T any](p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.Printf("Invalid input: %v.\n", err)
	}
}

func freeText(s string) (string, error) { return s, nil }

// Collect reads every field of a new transaction, re-asking for each field
// until its answer is valid. Only an input error (including io.EOF) stops it.
func (p *Prompter) Collect() (*domain.Transaction, error) {
	p.Printf("\n--- Add New Transaction ---\n")

	date, err := ask(p, "Date (YYYY-MM-DD): ", Date)
	if err != nil {
		return nil, err
	}
	category, err := ask(p, "Category (e.g., Food, Rent, Income): ", freeText)
	if err != nil {
		return nil, err
	}
	desc, err := ask(p, "Description: ", freeText)
	if err != nil {
		return nil, err
	}
	kind, err := ask(p, "Type (I for Income, E for Expense): ", Kind)
	if err != nil {
		return nil, err
	}
	amount, err := ask(p, "Amount: ", Amount)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		Date:        date,
		Category:    category,
		Description: desc,
		Kind:        kind,
		Amount:      amount,
	}, nil
}

// CollectTransaction collects a transaction and appends it to the ledger.
// The ledger is untouched when an error is returned.
func CollectTransaction(p *Prompter, ledger *domain.Ledger) (*domain.Transaction, error) {
	tx, err := p.Collect()
	if err != nil {
		return nil, err
	}
	ledger.Append(tx)
	p.Printf("Transaction added successfully!\n")
	return tx, nil
}
