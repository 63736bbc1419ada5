package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVerdict(t *testing.T) {
	tests := []struct {
		completion string
		want       Verdict
	}{
		{"VALID - ok", VerdictValid},
		{"VALID", VerdictValid},
		{"valid: the control is aligned", VerdictValid},
		{"**VALID** – strong alignment", VerdictValid},
		{"PARTIALLY VALID - lacks detail", VerdictPartiallyValid},
		{"Partially Valid. Suggested control: ...", VerdictPartiallyValid},
		{"INVALID – vague control", VerdictInvalid},
		{"### INVALID\nJustification", VerdictInvalid},
		{"VALIDATION incomplete", VerdictUnknown},
		{"The control is valid", VerdictUnknown},
		{"", VerdictUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.completion, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVerdict(tt.completion))
		})
	}
}
