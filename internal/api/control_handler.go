package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/control-validator/internal/api/shared"
	"github.com/phrazzld/control-validator/internal/platform/logger"
	"github.com/phrazzld/control-validator/internal/service"
)

// ControlHandler handles control validation HTTP requests
type ControlHandler struct {
	validationService service.ValidationService
	logger            *slog.Logger
}

// NewControlHandler creates a new ControlHandler
func NewControlHandler(validationService service.ValidationService, logger *slog.Logger) *ControlHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ControlHandler{
		validationService: validationService,
		logger:            logger.With("component", "control_handler"),
	}
}

// ValidateControl handles POST /validate-control requests.
// The seven control fields arrive as query parameters.
func (h *ControlHandler) ValidateControl(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := validationRequestFromQuery(r)
	if err != nil {
		log.Debug("rejected incomplete validation request", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.validationService.Validate(r.Context(), req)
	if err != nil {
		log.Debug("control validation failed", "status", MapErrorToStatusCode(err))
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ValidationResponse{Result: result})
}

// Root handles GET / requests. Query parameters are ignored.
func (h *ControlHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{Message: RootMessage})
}
