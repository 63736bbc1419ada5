// Package testutils provides HTTP testing helpers: starting test servers,
// issuing control validation requests and asserting API responses.
package testutils
