// Package handlers contains the gin handlers for the mock Ads API. Each
// handler binds the request payload, delegates to the matching service and
// translates service errors into HTTP status codes.
package handlers
