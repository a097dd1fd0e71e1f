// Package cli is the line-oriented portal client.
//
// It wires the gRPC transport into the explorer, inspection, viewer and
// admin controllers and drives them from a small REPL: list and search
// folders, upload certificates, approve or reject them, open previews and
// manage users. The REPL is started via App.Run, which blocks until the user
// exits or stdin is closed.
package cli
