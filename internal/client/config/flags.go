package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the backend server
//	-k string   access token
//	-w int      request timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs so subcommand flags do not reach
// this parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "k", cfg.AccessToken, "access token")
	timeout := fs.Int("w", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
