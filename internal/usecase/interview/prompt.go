package interview

import (
	"strings"
	"time"

	"daily-interviewer/internal/usecase/notes"
)

const basePrompt = `You are a thoughtful and empathetic interviewer helping someone reflect on their day. Your goal is to help them process their experiences, celebrate wins, acknowledge challenges, and identify insights.

%DATE%

Be conversational, warm, and genuinely curious. Ask follow-up questions based on their responses. Keep your responses concise but meaningful.

The interview should cover:
1. How they're feeling right now
2. What went well today
3. What challenges they faced
4. What they learned or would do differently
5. What they're looking forward to

After 5-7 exchanges, naturally wrap up the conversation and provide a brief summary of the key points discussed.`

const recapInstruction = `IMPORTANT: Start the conversation by briefly recapping what you noticed from their notes that seems relevant or interesting - mention specific things like goals, tasks, events, or themes you observed. Then use this context to ask your opening question. This shows you've read their notes and helps focus the conversation on what matters to them today.`

const summaryInstruction = "Please provide a brief 2-3 sentence summary of our conversation, highlighting the key themes and insights."

// BuildSystemPrompt returns the instruction message that opens every
// interview.
func BuildSystemPrompt(now time.Time, customPrompt, noteContext string) string {
	dateInfo := "Current date: " + notes.LongDate(now) + " at " + now.Format("3:04 PM")

	var b strings.Builder
	b.WriteString(strings.Replace(basePrompt, "%DATE%", dateInfo, 1))

	if strings.TrimSpace(customPrompt) != "" {
		b.WriteString("\n\nAdditional guidance: ")
		b.WriteString(customPrompt)
	}

	if noteContext != "" {
		b.WriteString("\n\n---\n\nHere is context from their notes to inform your questions:\n\n")
		b.WriteString(noteContext)
		b.WriteString("\n\n---\n\n")
		b.WriteString(recapInstruction)
	}

	return b.String()
}
