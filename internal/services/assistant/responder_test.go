package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondMatchesKeywordGroups(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"What does this place cost?", "$729,000"},
		{"HOW IS THE PRICE?", "$729,000"},
		{"Tell me about the schools nearby", "school district"},
		{"education options?", "school district"},
		{"Is the neighborhood safe?", "desirable neighborhood"},
		{"Can I visit this weekend?", "schedule a tour"},
		{"When was the kitchen redone?", "renovated in 2023"},
	}

	for _, tt := range tests {
		reply := Respond(tt.message)
		assert.Contains(t, reply, tt.want, "message %q", tt.message)
	}
}

func TestRespondFallsBackToAgentReferral(t *testing.T) {
	reply := Respond("Is there anything else I should know?")
	assert.Contains(t, reply, "Sarah Johnson")
}

func TestRespondIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Respond("price"), Respond("PRICE"))
}

func TestGreetingIsNonEmpty(t *testing.T) {
	assert.True(t, strings.HasPrefix(Greeting, "Hello"))
}
