// Package client bootstraps the CLI's local persistence: it opens the SQLite
// session database and applies the embedded goose migrations
// (see InitDatabase and RunMigrations).
//
// The database holds a single key/value table used by the session repository
// to persist the bearer token and the serialized profile across restarts.
package client
