package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdrop/internal/client/client"
	"github.com/dmitrijs2005/gophdrop/internal/client/config"
)

// dialFunc opens a client for the given access token.
type dialFunc func(token string) (client.Client, error)

type App struct {
	config *config.Config
	dial   dialFunc
	conn   client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	dial := func(token string) (client.Client, error) {
		return client.NewGophDropClient(c.ServerEndpointAddr, token)
	}
	return newApp(c, dial, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, dial dialFunc, in io.Reader, out io.Writer) *App {
	return &App{config: c, dial: dial, reader: bufio.NewReader(in), out: out}
}

// Run executes args as a single command, or starts the interactive loop when
// args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.Close()

	if len(args) == 0 {
		runREPL(ctx, a, a.reader, a.out)
		return nil
	}
	return a.Exec(ctx, args)
}

func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	err := a.conn.Close()
	a.conn = nil
	return err
}

// client returns a connection, prompting for a token first when auth is
// needed and none is configured.
func (a *App) client(needsAuth bool) (client.Client, error) {
	if needsAuth && a.config.AccessToken == "" {
		tok, err := GetToken(a.out)
		if err != nil {
			return nil, err
		}
		a.config.AccessToken = tok
		a.Close()
	}

	if a.conn != nil {
		return a.conn, nil
	}

	conn, err := a.dial(a.config.AccessToken)
	if err != nil {
		return nil, err
	}
	a.conn = conn
	return conn, nil
}

func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
