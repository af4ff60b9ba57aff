package store

import (
	"github.com/rs/zerolog/log"
	"github.com/voidshard/budget/pkg/domain"
)

type skipCounter interface {
	Skipped() int
}

// Load reads a ledger from r. It always returns a usable ledger: on any
// error, including ErrNoData, the ledger is empty and the error says why.
func Load(r Reader) (*domain.Ledger, error) {
	txns, err := r.Read()
	if err != nil {
		log.Debug().Err(err).Msg("starting with an empty ledger")
		return domain.NewLedger(), err
	}

	if sc, ok := r.(skipCounter); ok && sc.Skipped() > 0 {
		log.Warn().Int("skipped", sc.Skipped()).Int("loaded", len(txns)).Msg("dropped corrupt lines while loading")
	}
	log.Debug().Int("loaded", len(txns)).Msg("ledger loaded")

	return domain.NewLedger(txns...), nil
}

// Save writes every transaction of the ledger to w.
func Save(w Store, ledger *domain.Ledger) error {
	err := w.Write(ledger.Transactions())
	if err != nil {
		log.Error().Err(err).Msg("failed to save ledger")
		return err
	}
	log.Debug().Int("saved", ledger.Len()).Msg("ledger saved")
	return nil
}
