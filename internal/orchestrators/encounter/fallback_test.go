package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCandidates(t *testing.T) {
	testCases := []struct {
		name     string
		table    string
		regionID string
		expected []string
	}{
		{
			name:     "no region gives exact name only",
			table:    "Common - Animal",
			regionID: "",
			expected: []string{"Common - Animal"},
		},
		{
			name:     "region appends one fallback",
			table:    "Common - Animal",
			regionID: "test-region",
			expected: []string{"Common - Animal", "Common - Animal - test-region"},
		},
		{
			name:     "already qualified name is not re-qualified",
			table:    "Common - Animal - test-region",
			regionID: "test-region",
			expected: []string{"Common - Animal - test-region"},
		},
		{
			name:     "qualified for a different region still falls back",
			table:    "Common - Animal - other-region",
			regionID: "test-region",
			expected: []string{"Common - Animal - other-region", "Common - Animal - other-region - test-region"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, lookupCandidates(tc.table, tc.regionID))
		})
	}
}
