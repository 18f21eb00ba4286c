// Package httpapi serves release parsing and library index queries over
// HTTP.
//
// Routes are registered on a gorilla/mux router. Every response is JSON;
// errors use an {"error": "..."} body. Requests carry a generated request
// ID through the logging context, and an optional bearer token guards the
// whole API.
package httpapi
