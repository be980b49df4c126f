// Package client is the Booth Remote API Contract: the fixed catalogue of
// backend endpoints and their request/response shapes.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with one
//     method per endpoint: Register, Login, GetUser, ListItems, GetItem,
//     CreateItem, CreateOrder, GetOrder, FavoriteItem, UnfavoriteItem.
//  2. A REST/JSON implementation (see HTTPClient). Identity travels as an
//     "Authorization: Bearer <token>" header added by transport.Auth; the
//     contract methods themselves never see the token.
//  3. New, the single construction point that stacks the logging and
//     authentication round trippers over a tuned *http.Transport.
//
// # Error Handling
//
// Failures are classified as *TransportError (no connectivity, timeout, TLS),
// *StatusError (non-2xx) or *DecodeError (unexpected body). ErrUnavailable
// and ErrUnauthorized can be matched with errors.Is across all of them.
//
// Every method takes a context.Context and honours its cancellation. The
// client performs exactly one attempt per call and caches nothing.
package client
