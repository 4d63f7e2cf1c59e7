// Package middleware provides HTTP middleware for the Clubdeck API.
//
// The middleware package contains reusable components for authentication,
// rate limiting, and request processing, composed with Chain.
//
// # Authentication
//
// The auth middleware validates JWT bearer tokens and places the caller's
// identity in the request context. Handlers read it back with helpers:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Rate Limiting
//
// Token bucket rate limiting keyed by user ID (or remote address for
// unauthenticated requests) protects against abuse. Limit state lives in
// memory and is swept periodically.
//
// # Context Values
//
//   - GetUserID(ctx): authenticated user ID
//   - GetUserEmail(ctx): authenticated user email
//   - GetClaims(ctx): full JWT claims
//   - GetRequestID(ctx): unique request identifier
package middleware
