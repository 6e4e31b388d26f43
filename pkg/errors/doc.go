// Package errors provides custom error types for the ads-api-mock server.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ValidationError          │ 400    │ Bad page token, FROM entity, params │
//	│ ResourceNotFoundError    │ 404    │ Requested resource doesn't exist    │
//	│ UnauthorizedError        │ 401    │ Bad bearer or developer token       │
//	│ InvalidGrantError        │ 400    │ Bad OAuth code or refresh token     │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// Query-syntax failures are not defined here: the query engine returns its
// own gaql.ParseError value, which handlers map to HTTP 400.
//
// Usage:
//
//	if errors.IsResourceNotFoundError(err) {
//	    c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
//	}
package errors
