package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain digits unchanged",
			input:    "9876543210",
			expected: "9876543210",
		},
		{
			name:     "Country code prefix stripped of plus",
			input:    "+91 98765 43210",
			expected: "919876543210",
		},
		{
			name:     "Dashes and parentheses removed",
			input:    "(987) 654-3210",
			expected: "9876543210",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Letters removed",
			input:    "98x76y54z3210",
			expected: "9876543210",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePhone(tc.input))
		})
	}
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Asha", FirstName("Asha Verma", "Guest"))
	assert.Equal(t, "Asha", FirstName("  Asha   Verma  ", "Guest"))
	assert.Equal(t, "Asha", FirstName("Asha", "Guest"))
	assert.Equal(t, "Guest", FirstName("", "Guest"))
	assert.Equal(t, "Guest", FirstName("   ", "Guest"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "as**@example.com", MaskEmail("asha@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "3210", MaskPhoneNumber("3210"))
	assert.Equal(t, "********3210", MaskPhoneNumber("+91 98765 43210"))
}
