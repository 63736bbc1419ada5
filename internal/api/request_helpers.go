package api

import (
	"net/http"

	"github.com/phrazzld/control-validator/internal/domain"
)

// validationRequestFromQuery reads the control fields from the query string.
// A parameter counts as supplied when its key is present, even with an empty
// value. Only the first value of a repeated parameter is used.
func validationRequestFromQuery(r *http.Request) (domain.ValidationRequest, error) {
	q := r.URL.Query()
	return domain.BindValidationRequest(func(name string) (string, bool) {
		if !q.Has(name) {
			return "", false
		}
		return q.Get(name), true
	})
}
