// Package service contains the application use cases. It orchestrates the
// domain types, the prompt builder and the configured generator to fulfil a
// request, and translates their failures into errors the API layer can map
// to HTTP status codes.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete provider SDK.
package service
