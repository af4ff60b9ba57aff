package main

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/voidshard/budget/pkg/crypto"
	"github.com/voidshard/budget/pkg/menu"
	"github.com/voidshard/budget/pkg/report"
	"github.com/voidshard/budget/pkg/store"
	"os"
	"strings"
)

const storeUsage = "expected [flatfile:/path/file.txt jsonfile:/path/file.json sealed:/path/file es8:http://myelasticsearch:9200]"

type keyFlags struct {
	Key     string `env:"BUDGET_KEY" help:"Encryption key for sealed stores."`
	SignKey string `env:"BUDGET_SIGN_KEY" help:"Signing key for sealed stores."`
}

func (k keyFlags) keys() crypto.Keys {
	return crypto.Keys{Encryption: k.Key, Signature: k.SignKey}
}

type runCmd struct{}

type summaryCmd struct{}

type exportCmd struct {
	keyFlags `embed`
	Out      string `required help:"Where to write [jsonfile:/path/file.json sealed:/path/file es8:http://myelasticsearch:9200]"`
}

type restoreCmd struct {
	keyFlags `embed`
	From     string `required help:"Where to read from [flatfile:/path/file.txt jsonfile:/path/file.json sealed:/path/file]"`
}

type keygenCmd struct{}

func splitTarget(target string) (string, string, error) {
	bits := strings.SplitN(target, ":", 2)
	if len(bits) != 2 {
		return "", "", fmt.Errorf("invalid store %q, %s", target, storeUsage)
	}
	return bits[0], bits[1], nil
}

func getStore(target string, keys crypto.Keys) (store.Store, error) {
	kind, location, err := splitTarget(target)
	if err != nil {
		return nil, err
	}

	if kind == "es8" {
		return store.NewElasticsearchV8(location), nil
	}
	return getReadWriter(kind, location, keys)
}

func getReader(target string, keys crypto.Keys) (store.Reader, error) {
	kind, location, err := splitTarget(target)
	if err != nil {
		return nil, err
	}
	return getReadWriter(kind, location, keys)
}

func getReadWriter(kind, location string, keys crypto.Keys) (store.ReadWriter, error) {
	switch kind {
	case "flatfile":
		return store.NewFlatFile(location), nil
	case "jsonfile":
		return store.NewJSONFile(location), nil
	case "sealed":
		return store.NewSealedFile(location, keys), nil
	}
	return nil, fmt.Errorf("unknown store %q, %s", kind, storeUsage)
}

func (r *runCmd) Run(ctx *context) error {
	return menu.New(os.Stdin, os.Stdout, store.NewFlatFile(ctx.File)).Run()
}

func (s *summaryCmd) Run(ctx *context) error {
	ledger, err := store.Load(store.NewFlatFile(ctx.File))
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return err
	}
	report.Render(os.Stdout, report.Summarize(ledger.Transactions()))
	return nil
}

func (e *exportCmd) Run(ctx *context) error {
	out, err := getStore(e.Out, e.keys())
	if err != nil {
		return err
	}

	ledger, err := store.Load(store.NewFlatFile(ctx.File))
	if err != nil {
		return err
	}

	log.Info().Int("transactions", ledger.Len()).Str("out", e.Out).Msg("exporting")
	return store.Save(out, ledger)
}

func (r *restoreCmd) Run(ctx *context) error {
	in, err := getReader(r.From, r.keys())
	if err != nil {
		return err
	}

	ledger, err := store.Load(in)
	if err != nil {
		return err
	}

	log.Info().Int("transactions", ledger.Len()).Str("from", r.From).Msg("restoring")
	err = store.Save(store.NewFlatFile(ctx.File), ledger)
	if err != nil {
		return err
	}
	fmt.Printf("Restored %d transactions into %s\n", ledger.Len(), ctx.File)
	return nil
}

func (k *keygenCmd) Run(ctx *context) error {
	keys, err := crypto.NewKeys()
	if err != nil {
		return err
	}
	fmt.Printf("BUDGET_KEY=%s\nBUDGET_SIGN_KEY=%s\n", keys.Encryption, keys.Signature)
	return nil
}
