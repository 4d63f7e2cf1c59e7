package database

import (
	"context"
	"errors"
)

// Sentinel errors the store surfaces. Repositories and services match on
// these with errors.Is rather than inspecting driver errors.
var (
	// ErrNotFound means the record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique constraint was violated.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection covers dial, auth and transport failures.
	ErrConnection = errors.New("database connection error")

	// ErrQuery covers statement-level failures (bad syntax, bad reference).
	ErrQuery = errors.New("query error")
)

// Database is the store contract every repository depends on. Query is for
// statements returning row sets, QueryOne unwraps a single record (mapping an
// empty set to ErrNotFound), and Execute is for mutations whose rows the
// caller does not need.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config carries the connection settings for one namespace/database pair.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
