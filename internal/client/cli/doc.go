// Package cli provides the GophDrop command-line client.
//
// A single invocation runs one subcommand:
//
//	gophdrop [-a addr] [-k token] [-w seconds] <command> [flags] [args]
//
// Without a command the client reads commands from stdin in a loop until
// EOF or "exit". Commands that need an identity prompt for an access token
// when none was configured. File contents and keys are moved as opaque bytes
// between local files and the server.
package cli
