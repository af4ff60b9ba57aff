package domain

// Ledger is the in-memory, insertion ordered set of transactions for a session.
// It is not safe for concurrent use.
type Ledger struct {
	txns []*Transaction
}

// NewLedger returns a ledger holding the given transactions in order.
func NewLedger(txns ...*Transaction) *Ledger {
	l := &Ledger{txns: make([]*Transaction, 0, len(txns))}
	l.txns = append(l.txns, txns...)
	return l
}

// Append adds a transaction to the end of the ledger.
func (l *Ledger) Append(t *Transaction) {
	l.txns = append(l.txns, t)
}

// Transactions returns the transactions in insertion order. The slice is a
// copy; the records themselves are shared.
func (l *Ledger) Transactions() []*Transaction {
	out := make([]*Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Len returns the number of transactions held.
func (l *Ledger) Len() int {
	return len(l.txns)
}
