// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation IDs, request logging, CORS, security headers,
// panic recovery, and the translation of errors into the API's JSON
// error shape.
package middleware
