// Package service contains the business logic of the Clubdeck API.
//
// Services are plain structs over repository interfaces declared in this
// package, so tests can substitute in-memory implementations. All errors
// returned to callers are sentinel values defined in errors.go; handlers
// map them onto HTTP problem responses.
//
// # Consistency model
//
// Relationships between users, clubs and events are denormalized: both
// sides are stored and must be updated together. The store offers no
// multi-document transactions, so every cross-entity mutation is two
// sequential single-document writes. To keep that safe, all list
// mutations are idempotent keyed operations: removals of absent entries
// are no-ops, insertions are check-then-skip, and a retried operation
// therefore converges instead of duplicating entries.
//
// Cascading deletion (club or event teardown) tolerates per-user
// failures: a user record that cannot be detached is logged and skipped
// so one bad record cannot block an entire teardown. The primary delete
// still aborts on storage failure.
package service
