package menu

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/voidshard/budget/pkg/domain"
	"github.com/voidshard/budget/pkg/entry"
	"github.com/voidshard/budget/pkg/report"
	"github.com/voidshard/budget/pkg/store"
	"io"
	"strings"
)

type State int

const (
	Running State = iota
	Exiting
)

const (
	ChoiceAdd    = "1"
	ChoiceReport = "2"
	ChoiceExit   = "3"
)

// Controller drives the interactive session. The ledger is loaded once when
// Run starts and saved once when the user exits.
type Controller struct {
	prompter *entry.Prompter
	out      io.Writer
	store    store.ReadWriter
	ledger   *domain.Ledger
	state    State
}

func New(in io.Reader, out io.Writer, rw store.ReadWriter) *Controller {
	return &Controller{
		prompter: entry.NewPrompter(in, out),
		out:      out,
		store:    rw,
		ledger:   domain.NewLedger(),
	}
}

func (c *Controller) Ledger() *domain.Ledger { return c.ledger }

func (c *Controller) State() State { return c.state }

// Run loads the ledger and serves the menu until the user exits. End of
// input counts as choosing to exit, so the ledger is still saved. Only an
// input failure other than io.EOF is returned.
func (c *Controller) Run() error {
	c.load()

	for c.state == Running {
		choice, err := c.ask()
		if err != nil {
			c.exit()
			return ignoreEOF(err)
		}

		err = c.Handle(choice)
		if err != nil {
			c.exit()
			return ignoreEOF(err)
		}
	}

	return nil
}

// Handle acts on a single menu choice.
func (c *Controller) Handle(choice string) error {
	switch strings.TrimSpace(choice) {
	case ChoiceAdd:
		tx, err := entry.CollectTransaction(c.prompter, c.ledger)
		if err != nil {
			return err
		}
		log.Debug().Str("date", tx.Date).Str("kind", tx.Kind.String()).Msg("transaction added")
	case ChoiceReport:
		report.Render(c.out, report.Summarize(c.ledger.Transactions()))
	case ChoiceExit:
		c.exit()
	default:
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
	return nil
}

func (c *Controller) ask() (string, error) {
	fmt.Fprintln(c.out, "\n--- Personal Budget Tracker Menu ---")
	fmt.Fprintln(c.out, "1. Add New Transaction")
	fmt.Fprintln(c.out, "2. View Summary Report")
	fmt.Fprintln(c.out, "3. Exit and Save")
	return c.prompter.Line("Enter your choice (1-3): ")
}

func (c *Controller) load() {
	ledger, err := store.Load(c.store)
	c.ledger = ledger

	switch {
	case errors.Is(err, store.ErrNoData):
		fmt.Fprintln(c.out, "No existing data file found. Starting a new budget.")
	case err != nil:
		fmt.Fprintf(c.out, "Error loading data: %v. Starting with an empty list.\n", err)
	}
}

func (c *Controller) exit() {
	if err := store.Save(c.store, c.ledger); err != nil {
		fmt.Fprintf(c.out, "Error saving data: %v\n", err)
	} else {
		fmt.Fprintln(c.out, "Data saved successfully!")
	}
	fmt.Fprintln(c.out, "Program finished. Thank you!")
	c.state = Exiting
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
