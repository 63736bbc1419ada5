// Package prompt renders the instruction text sent to the generation provider.
//
// The default template is embedded in the binary. It substitutes the seven
// fields of a domain.ValidationRequest verbatim (text/template, no escaping),
// and can be replaced at startup by a template file with the same fields.
package prompt
