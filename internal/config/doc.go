// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional config
// file. It provides type-safe access to settings for the HTTP server, CORS
// and the text-generation provider while keeping configuration details
// separate from request handling.
package config
