package api

// RootMessage is returned by the root endpoint.
const RootMessage = "Enhanced Control Validator API is working."

// ValidationResponse defines the successful response for POST /validate-control.
type ValidationResponse struct {
	// Result is the provider's completion with surrounding whitespace removed
	Result string `json:"result"`
}

// RootResponse defines the response for GET /.
type RootResponse struct {
	Message string `json:"message"`
}
