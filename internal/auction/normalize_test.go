package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapse and trim", input: "  jane   doe ", want: "Jane Doe"},
		{name: "sentinel", input: NoBidsLabel, want: "No Bids"},
		{name: "upper", input: "ALICE", want: "Alice"},
		{name: "tabs and newlines", input: "\tbob\n smith\t", want: "Bob Smith"},
		{name: "single word", input: "x", want: "X"},
		{name: "already normalized", input: "Jane Doe", want: "Jane Doe"},
		{name: "unicode", input: "élodie  müller", want: "Élodie Müller"},
		{name: "blank", input: "   ", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "not idempotent")
		})
	}
}
