// Package logging is the one logging surface of the Booth client and the
// reference backend. Everything logs through Logger; SlogLogger backs it.
package logging

import "context"

// Logger writes leveled records with alternating key and value attributes:
//
//	log.Info(ctx, "item published", "item_id", id, "seller_id", sellerID)
//
// Records carry ctx so handlers can pick request-scoped values from it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for failures the caller recovered from, such as a profile
	// lookup that fell back to the token claim.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds args to every record of the returned logger.
	With(args ...any) Logger
}
