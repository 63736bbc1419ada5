// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the control validator to Google's external Gemini service
// without exposing the details of the SDK to the rest of the application.
// It sends the prompt with the configured token cap and temperature, rejects
// responses blocked by safety filters, and returns the first candidate's text.
package gemini
