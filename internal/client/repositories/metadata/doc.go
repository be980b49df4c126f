// Package metadata provides the local key/value table the client keeps next to
// its session: small named blobs such as the auth token or the signed-in
// user id.
//
// The SQLite implementation works over a dbx.DBTX, so the same repository can
// be bound to a *sql.DB for single statements or to a *sql.Tx when several
// keys must change together.
package metadata
