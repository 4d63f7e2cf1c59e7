// Package repository implements SurrealDB-backed persistence for Clubdeck
// entities.
//
// Each entity (user, club, event) is stored as a single document including
// its denormalized relationship lists, so a Save writes the whole record.
// Lookups by id return (nil, nil) when the record does not exist; callers
// translate that into their own not-found errors.
package repository
