// Package cli provides the interactive Booth terminal client.
//
// It wires configuration, the local session database, the HTTP API client
// and the service facade, then runs a REPL until the user exits. Every
// command goes through a viewstate.Holder, so the user sees a loading line
// followed by either the result or a failure message. A failed call can be
// repeated with "retry".
//
// Commands:
//   - register, login, logout, whoami
//   - user <id>
//   - items [page], mine [page], item <id>, publish
//   - buy <itemId>, order <id>
//   - fav <itemId>, unfav <itemId>
//   - retry, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
