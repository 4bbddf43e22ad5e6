package assistant

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeInsights Mode = "insights"
	ModeChat     Mode = "chat"
)

const insightsFraming = "You are an expert business analyst providing actionable insights for a growing business. Analyze this comprehensive business data and provide strategic recommendations."

const chatFraming = "You are an AI business assistant for a growing business. Answer the owner's question using the business data below. Be specific and reference the actual figures."

const insightSchema = `Provide exactly 6-8 actionable insights in this JSON format:
[
  {
    "type": "insight|recommendation|alert|opportunity",
    "title": "Brief, impactful title",
    "content": "Detailed, actionable insight with specific numbers and recommendations",
    "priority": "high|medium|low",
    "category": "Financial|Sales|Inventory|Customer|Operations",
    "impact": "Potential impact description",
    "actionable": true
  }
]
Return only the JSON array, with no text before or after it.`

// FocusAreas são os temas que toda geração de insights deve cobrir
var FocusAreas = []string{
	"Critical issues requiring immediate attention",
	"Revenue optimization opportunities",
	"Cost reduction strategies",
	"Customer retention and growth",
	"Inventory optimization",
	"Cash flow improvements",
	"Strategic growth initiatives",
}

// BuildPrompt monta o prompt final a partir do contexto serializado. Não faz I/O.
func BuildPrompt(context, question string, mode Mode) string {
	question = strings.TrimSpace(question)

	var b strings.Builder
	if mode == ModeChat {
		b.WriteString(chatFraming)
		b.WriteString("\n\n")
		b.WriteString(context)
		b.WriteString("\nUSER QUESTION:\n")
		b.WriteString(question)
		b.WriteString("\n\nAnswer the question above using only the RESPONSE FORMATTING conventions. Use Pakistani Rupees (Rs.) for currency.\n")
		return b.String()
	}

	b.WriteString(insightsFraming)
	b.WriteString("\n\n")
	b.WriteString(context)
	b.WriteString("\n")
	b.WriteString(insightSchema)
	b.WriteString("\n\nFocus on:\n")
	for i, area := range FocusAreas {
		fmt.Fprintf(&b, "%d. %s\n", i+1, area)
	}
	if question != "" {
		fmt.Fprintf(&b, "%d. The owner's specific request: %s\n", len(FocusAreas)+1, question)
	}
	b.WriteString("\nMake each insight specific, actionable, and valuable for decision-making. Use Pakistani Rupees (Rs.) for currency.\n")

	return b.String()
}
