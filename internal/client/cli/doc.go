// Package cli provides the interactive diarykeeper command-line client.
//
// It wires configuration, local storage, API services, and an interactive REPL.
// Typical flow: log in, start a background connectivity watcher, then write
// entries with "new".
//
// Key features:
//   - Register / Login / Logout
//   - New entry: a compose session with title, body, image attachments and
//     the automatically resolved place, saved with "save" (or "back")
//   - List recently saved entries
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
