// Package model defines the entity types persisted by Clubdeck and the
// error representation returned to API clients.
//
// # Entities
//
// Three entities carry the domain: User, Club and Event. Relationships
// between them are denormalized: both sides of every relationship are
// stored, so a user lists the clubs it belongs to while each club lists
// its members. The mutation helpers on these types keep the stored lists
// free of duplicates; keeping BOTH sides in agreement is the job of the
// service layer, which always mutates the two entities of a pair together.
//
// # Invariants
//
//   - A club id appears in at most one of User.RegisteredClubs and
//     User.PendingClubRequests.
//   - A user id appears in at most one of Club.Members and
//     Club.PendingRequests.
//   - Every id in Club.Events belongs to an Event whose ClubID points back
//     at that club, and every entry in Event.Players belongs to a User whose
//     RegisteredEvents contains the event id.
//
// # Errors
//
// API errors use RFC 9457 Problem Details (errors.go). Service-layer
// sentinel errors are mapped onto ProblemDetails by the handler package.
package model
