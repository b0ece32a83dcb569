package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextJobNumber(t *testing.T) {
	testCases := []struct {
		testName string
		existing []string
		expected string
	}{
		{
			testName: "Should return the first number for an empty set",
			existing: []string{},
			expected: "EJB-00001",
		},
		{
			testName: "Should return the first number when nothing matches the format",
			existing: []string{"EJB-1", "XYZ-00002", "EJB-abcde", ""},
			expected: "EJB-00001",
		},
		{
			testName: "Should increment the maximum suffix",
			existing: []string{"EJB-00001", "EJB-00002"},
			expected: "EJB-00003",
		},
		{
			testName: "Should ignore malformed entries while computing the maximum",
			existing: []string{"EJB-00007", "EJB-1", "XYZ-00100", "EJB-abcde"},
			expected: "EJB-00008",
		},
		{
			testName: "Should match the prefix case-insensitively",
			existing: []string{"ejb-00041"},
			expected: "EJB-00042",
		},
		{
			testName: "Should fill gaps never, only increment the maximum",
			existing: []string{"EJB-00001", "EJB-00005"},
			expected: "EJB-00006",
		},
		{
			testName: "Should tolerate surrounding whitespace",
			existing: []string{"  EJB-00009  "},
			expected: "EJB-00010",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, DefaultJobNumberFormat.Next(tc.existing))
		})
	}
}

func TestJobNumberFormatIsInjectable(t *testing.T) {
	format := JobNumberFormat{Prefix: "MFG", Digits: 4}

	assert.Equal(t, "MFG-0001", format.Next(nil))
	assert.Equal(t, "MFG-0100", format.Next([]string{"MFG-0099", "EJB-00500"}))
	assert.True(t, format.Valid("mfg-0007"))
	assert.False(t, format.Valid("MFG-00007"))
}

func TestJobNumberValidation(t *testing.T) {
	assert.True(t, DefaultJobNumberFormat.Valid("EJB-00001"))
	assert.True(t, DefaultJobNumberFormat.Valid("ejb-00001"))
	assert.True(t, DefaultJobNumberFormat.Valid(" EJB-00001 "))
	assert.False(t, DefaultJobNumberFormat.Valid("EJB-001"))
	assert.False(t, DefaultJobNumberFormat.Valid("EJB-000001"))
	assert.False(t, DefaultJobNumberFormat.Valid("EJB00001"))
	assert.False(t, DefaultJobNumberFormat.Valid("EJB-abcde"))

	assert.Equal(t, "EJB-00001", DefaultJobNumberFormat.Normalize(" ejb-00001 "))
}
