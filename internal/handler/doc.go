// Package handler contains the HTTP layer of the Clubdeck API.
//
// Handlers are thin: they decode the request, resolve the authenticated
// user from the request context, call exactly one service method and
// translate its result. All service errors flow through MapServiceError
// so status codes and problem bodies stay consistent across endpoints.
//
// Responses follow a uniform envelope: successful payloads are wrapped
// in DataResponse, failures are RFC 9457 problem documents.
package handler
