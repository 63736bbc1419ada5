package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/control-validator/internal/domain"
)

//go:embed templates/control_validation.tmpl
var templates embed.FS

const defaultTemplateFile = "templates/control_validation.tmpl"

// ErrInvalidTemplate is returned when a template cannot be read, parsed or executed.
var ErrInvalidTemplate = errors.New("invalid prompt template")

// Builder renders prompts from a parsed template. It is safe for concurrent use.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses the embedded template.
func NewBuilder() (*Builder, error) {
	content, err := templates.ReadFile(defaultTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return parse("control_validation", string(content))
}

// NewBuilderFromFile parses the template at path. An empty path selects the
// embedded template.
func NewBuilderFromFile(path string) (*Builder, error) {
	if path == "" {
		return NewBuilder()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v", ErrInvalidTemplate, path, err)
	}
	return parse(path, string(content))
}

func parse(name, content string) (*Builder, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidTemplate, err)
	}

	// Render once with an empty request so a template referring to unknown
	// fields fails at startup rather than on the first request.
	b := &Builder{tmpl: tmpl}
	if _, err := b.Build(domain.ValidationRequest{}); err != nil {
		return nil, err
	}
	return b, nil
}

// Build substitutes the request fields into the template.
func (b *Builder) Build(req domain.ValidationRequest) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("%w: failed to execute prompt template: %v", ErrInvalidTemplate, err)
	}
	return buf.String(), nil
}

// Name identifies the template, for logging.
func (b *Builder) Name() string {
	return b.tmpl.Name()
}
