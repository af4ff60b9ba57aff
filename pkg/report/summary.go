package report

import (
	"fmt"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/voidshard/budget/pkg/domain"
	"io"
	"math"
	"sort"
	"strings"
)

// Currency used when displaying amounts. The ledger itself is currency agnostic.
const Currency = money.USD

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the net balance of a ledger plus its expenses grouped by category.
type Summary struct {
	Count      int
	Net        decimal.Decimal
	Categories []CategoryTotal // ascending by category
}

// Empty reports whether the summary was built from no transactions at all.
func (s *Summary) Empty() bool {
	return s.Count == 0
}

// Total returns the expense total for category, zero if it has none.
func (s *Summary) Total(category string) decimal.Decimal {
	for _, c := range s.Categories {
		if c.Category == category {
			return c.Total
		}
	}
	return decimal.Zero
}

// Summarize adds income and subtracts expenses to get the net balance, and
// totals expenses per category. Transactions of any other kind are counted
// but contribute to neither.
func Summarize(txns []*domain.Transaction) *Summary {
	net := decimal.Zero
	totals := map[string]decimal.Decimal{}

	for _, t := range txns {
		amount := decimal.NewFromFloat(t.Amount)

		switch t.Kind {
		case domain.Income:
			net = net.Add(amount)
		case domain.Expense:
			net = net.Sub(amount)
			totals[t.Category] = totals[t.Category].Add(amount)
		}
	}

	categories := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		categories = append(categories, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &Summary{Count: len(txns), Net: net, Categories: categories}
}

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// Format renders d with two decimals and thousands separators, eg. $1,234.50.
func Format(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return formatLarge(d)
	}
	return money.New(cents.IntPart(), Currency).Display()
}

// formatLarge handles amounts whose cents do not fit in an int64, laid out
// the same way go-money lays out the currency.
func formatLarge(d decimal.Decimal) string {
	cur := money.New(0, Currency).Currency()
	digits := d.Abs().StringFixed(2)
	whole, frac := digits[:len(digits)-3], digits[len(digits)-2:]

	grouped := &strings.Builder{}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteString(cur.Thousand)
		}
		grouped.WriteRune(r)
	}

	out := strings.Replace(cur.Template, "1", grouped.String()+cur.Decimal+frac, 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// Render writes the summary as shown in the menu.
func Render(w io.Writer, s *Summary) {
	if s.Empty() {
		fmt.Fprintln(w, "\nNo transactions recorded yet.")
		return
	}

	fmt.Fprintln(w, "\n====================================")
	fmt.Fprintln(w, "FINANCIAL SUMMARY REPORT")
	fmt.Fprintf(w, "Current Net Balance: %s\n", Format(s.Net))
	fmt.Fprintln(w, "------------------------------------")
	fmt.Fprintln(w, "Expense Breakdown by Category")
	for _, c := range s.Categories {
		fmt.Fprintf(w, "- %-15s: %s\n", c.Category, Format(c.Total))
	}
	fmt.Fprintln(w, "====================================")
}
