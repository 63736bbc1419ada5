package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/control-validator/internal/domain"
	"github.com/phrazzld/control-validator/internal/generation"
	"github.com/phrazzld/control-validator/internal/redact"
)

// PromptBuilder renders the prompt for a validation request.
type PromptBuilder interface {
	Build(req domain.ValidationRequest) (string, error)
}

// ValidationService evaluates audit controls with a language model.
type ValidationService interface {
	// Validate renders the prompt for a bound request and returns the trimmed
	// completion. Field values are forwarded as given, empty ones included;
	// presence is checked when the request is bound.
	//
	// Errors:
	//   - a *generation.ProviderError when the provider call fails; its message is the provider's
	//   - context.DeadlineExceeded (wrapped) when the request deadline passes
	Validate(ctx context.Context, req domain.ValidationRequest) (string, error)
}

// modelNamer is implemented by generators that know their model identifier.
type modelNamer interface {
	Model() string
}

type validationServiceImpl struct {
	builder   PromptBuilder
	generator generation.Generator
	provider  string
	model     string
	logger    *slog.Logger
}

// NewValidationService creates a ValidationService. provider names the
// generator's backend and is attached to logs and provider errors.
// It returns an error if builder or generator is nil.
func NewValidationService(
	builder PromptBuilder,
	generator generation.Generator,
	provider string,
	logger *slog.Logger,
) (ValidationService, error) {
	if builder == nil {
		return nil, &ValidationServiceError{
			Operation: "create_service",
			Message:   "builder cannot be nil",
			Err:       ErrNilDependency,
		}
	}
	if generator == nil {
		return nil, &ValidationServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
			Err:       ErrNilDependency,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	var model string
	if m, ok := generator.(modelNamer); ok {
		model = m.Model()
	}

	return &validationServiceImpl{
		builder:   builder,
		generator: generator,
		provider:  provider,
		model:     model,
		logger:    logger.With("component", "validation_service"),
	}, nil
}

// Validate implements ValidationService.
func (s *validationServiceImpl) Validate(ctx context.Context, req domain.ValidationRequest) (string, error) {
	log := s.logger

	// 1. Render the prompt
	prompt, err := s.builder.Build(req)
	if err != nil {
		log.ErrorContext(ctx, "failed to build prompt", "error", redact.Error(err))
		return "", NewValidationServiceError("build_prompt", "failed to build prompt", err)
	}

	// 2. Ask the provider
	completion, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", s.classifyGenerateError(ctx, err)
	}

	// 3. Trim and record the verdict
	completion = strings.TrimSpace(completion)
	verdict := domain.ClassifyVerdict(completion)
	log.InfoContext(ctx, "control validated",
		"provider", s.provider,
		"model", s.model,
		"control", req.Control,
		"verdict", string(verdict),
		"completion_length", len(completion))

	return completion, nil
}

// classifyGenerateError keeps deadline errors recognisable and presents every
// other generator failure as a provider error carrying the raw message.
func (s *validationServiceImpl) classifyGenerateError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.logger.WarnContext(ctx, "provider call timed out",
			"provider", s.provider,
			"error", redact.Error(err))
		if !errors.Is(err, context.DeadlineExceeded) {
			return errors.Join(err, context.DeadlineExceeded)
		}
		return err
	}

	s.logger.ErrorContext(ctx, "provider call failed",
		"provider", s.provider,
		"model", s.model,
		"error", redact.Error(err))

	if generation.IsProviderError(err) {
		return err
	}
	return generation.NewProviderError(s.provider, err)
}
