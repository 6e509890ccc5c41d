package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		query string
		kind  QueryKind
		value string
	}{
		{"1234", QuerySearchableID, "1234"},
		{"LB1234", QuerySearchableID, "1234"},
		{"lb1234", QuerySearchableID, "1234"},
		{" LB1234 ", QuerySearchableID, "1234"},
		{"90210", QueryZipCode, "90210"},
		{"123", QueryGeneral, "123"},
		{"123456", QueryGeneral, "123456"},
		{"LB12345", QueryGeneral, "LB12345"},
		{"Oak Avenue", QueryGeneral, "Oak Avenue"},
		{"reno", QueryGeneral, "reno"},
	}

	for _, tt := range tests {
		kind, value := ClassifyQuery(tt.query)
		assert.Equal(t, tt.kind, kind, "query %q", tt.query)
		assert.Equal(t, tt.value, value, "query %q", tt.query)
	}
}
