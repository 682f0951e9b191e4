package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base address of the authentication API
//	-b string   OAuth callback address
//	-d string   data directory
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so the -c/-config flag
// does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base address of the authentication API")
	fs.StringVar(&cfg.CallbackURL, "b", cfg.CallbackURL, "address to return to after OAuth sign-in")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
