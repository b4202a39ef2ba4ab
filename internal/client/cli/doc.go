// Package cli provides the interactive CrewHive command-line client.
//
// It wires configuration, the local session store, the API services and an
// interactive REPL. Typical flow: restore or prompt for a session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Logout with a locally persisted token pair
//   - Day view combining events and shifts (today, day <date>)
//   - Creating, updating and deleting events and shifts
//   - Weekly scheduled-hours summary
//   - Demo mode serving generated data without a backend
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
