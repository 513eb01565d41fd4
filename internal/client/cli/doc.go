// Package cli provides the interactive inventory command-line client.
//
// It wires configuration, the gateway and identity clients, and the
// view-state controller into a REPL. Typical flow: list the inventory as a
// guest, sign in, then create, update, view, and delete items.
//
// Key commands:
//   - login / logout
//   - list, view
//   - new, edit, set, form, submit, cancel
//   - delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
