package assistant

import "strings"

// Greeting opens every assistant conversation.
const Greeting = "Hello! I'm your AI assistant. I can help answer questions about this property. What would you like to know?"

// fallback is returned when no keyword group matches.
const fallback = "Thank you for your question! For detailed information about this property, I recommend speaking with listing agent Sarah Johnson. She can provide comprehensive answers and schedule a showing. Would you like me to connect you with her?"

// rules are checked in order; the first group with a keyword present in the
// message wins.
var rules = []struct {
	keywords []string
	response string
}{
	{
		keywords: []string{"price", "cost"},
		response: "The property is listed at $729,000. This price reflects the recent renovations and prime location. Would you like to know about financing options or comparable properties in the area?",
	},
	{
		keywords: []string{"school", "education"},
		response: "The property is in an excellent school district! Lincoln Elementary (9/10), Jefferson Middle (8/10), and Washington High (9/10) all serve this area. The schools are highly rated for both academics and extracurriculars.",
	},
	{
		keywords: []string{"neighborhood", "area"},
		response: "This is a highly desirable neighborhood known for its tree-lined streets, family-friendly atmosphere, and convenient location. You'll find parks, shopping centers, and excellent restaurants within walking distance.",
	},
	{
		keywords: []string{"tour", "visit"},
		response: "I'd be happy to help you schedule a tour! You can book a virtual tour, in-person showing, or 3D walkthrough. Would you prefer to speak with the listing agent Sarah Johnson directly, or would you like me to connect you?",
	},
	{
		keywords: []string{"kitchen", "appliances"},
		response: "The kitchen was completely renovated in 2023 with high-end finishes including quartz countertops, stainless steel appliances, and custom cabinetry. It features a large island perfect for entertaining and opens to the family room.",
	},
}

// Respond returns the scripted reply for a visitor message. Pure string
// matching, no external call.
func Respond(message string) string {
	message = strings.ToLower(message)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(message, keyword) {
				return rule.response
			}
		}
	}
	return fallback
}
