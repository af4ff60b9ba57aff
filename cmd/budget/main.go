/*Basic command structure*/
package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
)

// context holds global options
type context struct {
	File  string `default:"transactions.txt" help:"Ledger file, one transaction per line."`
	Debug bool   `help:"Log diagnostics to stderr."`
}

// cli commands / args available
var cli struct {
	Ctx context `embed`

	Run     runCmd     `cmd default:"1" help:"Interactive menu to add transactions and view the summary (default)."`
	Summary summaryCmd `cmd help:"Print the summary report and exit."`
	Export  exportCmd  `cmd help:"Copy the ledger to another store."`
	Restore restoreCmd `cmd help:"Replace the ledger with the contents of another store."`
	Keygen  keygenCmd  `cmd help:"Print a fresh key pair for sealed stores."`
}

func setupLogging(debug bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func main() {
	ctx := kong.Parse(&cli)
	setupLogging(cli.Ctx.Debug)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
