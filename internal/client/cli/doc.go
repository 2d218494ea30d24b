// Package cli provides the interactive nutrition-tracking command-line client.
//
// It wires configuration, the local session store, the backend API client and
// an interactive REPL. Typical flow: restore the persisted session, evaluate
// the route guard for the initial view, and execute user commands.
//
// Key features:
//   - Login with a pasted identity token or an opaque access token
//   - Onboarding (age, body metrics, activity, goal) via the backend
//   - Navigation between views, gated by the access guard
//   - Recent meals and today's calorie progress, kept fresh by a
//     background goal watcher
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and Open for details.
package cli
