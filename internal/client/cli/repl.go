package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// executor is the command surface the loop needs. App satisfies it; tests
// use a stub.
type executor interface {
	Exec(ctx context.Context, args []string) error
}

// runREPL reads one command per line from reader and hands it to e until
// EOF, "exit" or "quit". Errors are printed and the loop continues. Commands
// share the reader, so prompts inside a command consume the following lines.
func runREPL(ctx context.Context, e executor, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, "GophDrop CLI (type 'help' for commands)")
	for {
		fmt.Fprint(w, "gd> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		if err := e.Exec(ctx, parts); err != nil {
			fmt.Fprintln(w, "error:", err)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
