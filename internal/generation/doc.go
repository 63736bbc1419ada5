// Package generation defines the boundary between the control validator and
// external LLM text-generation providers. The Generator interface abstracts
// the provider SDKs in internal/platform (Cohere, Gemini, OpenAI, Anthropic),
// and the errors declared here let callers tell provider failures apart from
// configuration and response problems without depending on a specific SDK.
package generation
