// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, request correlation IDs, panic recovery, and
// the global error handler.
package middleware
