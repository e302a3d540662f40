package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mayurhapani/online-quiz-cli/internal/client/models"
)

func TestResolveChoice(t *testing.T) {
	q := &models.Question{Choices: []string{"Alpha", "Beta", "Gamma"}}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number selects 1-based option", "2", "Beta"},
		{"exact text passes through", "Gamma", "Gamma"},
		{"zero is not an option index", "0", "0"},
		{"out of range is kept as text", "9", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveChoice(q, tt.input))
		})
	}
}
