// Package models holds the data-transfer objects exchanged with the Booth
// backend. They are plain values: the client only decodes them from responses
// or builds them for creation requests.
//
// JSON field names are camelCase and must match the backend exactly.
package models
