package standardizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Basic street address",
			input:    "123 Main Street",
			expected: "123 main st",
		},
		{
			name:     "Address with directional",
			input:    "456 North Elm Avenue",
			expected: "456 n elm ave",
		},
		{
			name:     "Address with unit number",
			input:    "789 Oak Drive Apt #301",
			expected: "789 oak dr apt 301",
		},
		{
			name:     "Multiple spaces",
			input:    "1010   Maple    Lane",
			expected: "1010 maple ln",
		},
		{
			name:     "Mixed case",
			input:    "2020 SuNsEt BoUlEvArD",
			expected: "2020 sunset blvd",
		},
		{
			name:     "Suite with punctuation",
			input:    "3030 Business Center Drive, Suite 200",
			expected: "3030 business ctr dr ste 200",
		},
		{
			name:     "Complex address",
			input:    "4040 Southwest Highland TERRACE, Unit #B-12, Floor 3",
			expected: "4040 sw highland ter unit b-12 fl 3",
		},
		{
			name:     "Company name",
			input:    "Acme Widgets, Incorporated.",
			expected: "acme widgets inc",
		},
		{
			name:     "Empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Standardize(tt.input))
		})
	}
}

func TestStandardize_NoAbbreviations(t *testing.T) {
	got := New(nil).Standardize("  123 Main Street!  ")
	assert.Equal(t, "123 main street", got)
}
