// Package cli implements the interactive KOACH command-line client.
//
// The REPL accepts:
//
//	Not logged in:  help, register, login, exit | quit
//	Logged in:      help, profile, rename, delete, logout, exit | quit
//
// The session token lives only in process memory; quitting the CLI forgets it.
package cli
