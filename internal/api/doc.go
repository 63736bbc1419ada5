// Package api handles incoming HTTP requests, request binding and response
// formatting. It acts as an adapter between external clients and the
// validation service, translating HTTP concerns to service calls and
// service errors back to status codes.
package api
