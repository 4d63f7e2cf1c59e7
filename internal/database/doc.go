// Package database provides database connectivity for the Clubdeck API.
//
// The package abstracts SurrealDB behind the Database interface so that
// repositories stay independent of the driver. Three query methods cover
// every access pattern:
//
//   - Query: SELECT queries returning lists
//   - QueryOne: SELECT by id, returns ErrNotFound for an empty result
//   - Execute: CREATE/UPDATE/DELETE mutations with no result
//
// There is deliberately no multi-document transaction support: every
// cross-entity mutation in this system is performed as two sequential
// single-document writes, and the service layer keeps those writes
// idempotent so that a retried operation converges instead of corrupting
// the denormalized relationship lists.
//
// # Error Handling
//
// Standard errors are defined for common failure cases and should be
// checked with errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
