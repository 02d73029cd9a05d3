package assistant

import (
	"fmt"
	"time"

	"realty-flow/backend/internal/llm"
)

// historyLimit bounds how many caller-supplied conversation turns are
// forwarded to the completion service, to keep prompt size and cost in check.
// Only the most recent turns survive; their relative order is preserved.
const historyLimit = 10

const chatSystemPrompt = `You are an intelligent AI assistant specialized in real estate and work organization. Your capabilities include:

1. REAL ESTATE EXPERTISE:
- Help clients find properties based on their preferences
- Provide market insights and property recommendations
- Schedule property viewings and meetings with agents
- Answer questions about buying, selling, and renting

2. WORK ORGANIZATION:
- Create and manage task lists
- Schedule meetings and appointments
- Set reminders and deadlines
- Organize projects and workflows
- Provide productivity tips and strategies

3. GENERAL ASSISTANCE:
- Answer questions intelligently
- Provide helpful information and advice
- Maintain context throughout conversations
- Be professional, friendly, and efficient

Always be helpful, accurate, and maintain a professional tone. When organizing work, be specific about dates, times, and actionable steps. For real estate inquiries, ask relevant questions to better understand client needs.

Current date and time: %s`

const taskSystemPrompt = `You are a task organization expert. Break the given task into clear, actionable steps and always respond with a valid JSON object in exactly this format:
{
    "title": "Task Title",
    "steps": [
        "Step 1: Description",
        "Step 2: Description",
        "Step 3: Description"
    ],
    "priority": "High/Medium/Low",
    "estimated_total_time": "X hours",
    "description": "Brief overview of the task"
}
Focus on real estate and business tasks. Be specific and actionable.
Current date: %s`

const meetingSystemPrompt = `You are a meeting planning expert. Always respond with a valid JSON object in exactly this format:
{
    "title": "Meeting Title",
    "agenda": [
        "Agenda item 1",
        "Agenda item 2",
        "Agenda item 3"
    ],
    "duration": "X minutes/hours",
    "preparation": [
        "Preparation item 1",
        "Preparation item 2"
    ],
    "details": "Additional meeting details and recommendations"
}
Focus on real estate and business meetings. Be professional and thorough.
Current date and time: %s`

// assembleChat builds the message list for a chat completion: one system turn,
// up to historyLimit prior turns in original order, then the user's message.
// The system turn embeds the current wall-clock time so the model can reason
// about dates; two calls made at different times legitimately differ.
func assembleChat(message string, history []llm.Message, now time.Time) []llm.Message {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: fmt.Sprintf(chatSystemPrompt, now.Format("2006-01-02 15:04:05")),
	})
	for _, turn := range history {
		messages = append(messages, normalizeTurn(turn))
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	return messages
}

// assembleTask builds the two-turn message list for task organization.
func assembleTask(task string, now time.Time) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf(taskSystemPrompt, now.Format("2006-01-02"))},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Please organize this task: %s", task)},
	}
}

// assembleMeeting builds the two-turn message list for meeting planning.
func assembleMeeting(details string, now time.Time) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf(meetingSystemPrompt, now.Format("2006-01-02 15:04:05"))},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Help me organize this meeting: %s", details)},
	}
}

// normalizeTurn coerces a caller-supplied history entry into a safe shape.
// A missing or unknown role becomes "user"; unknown role tags are never
// forwarded to the completion service as-is.
func normalizeTurn(turn llm.Message) llm.Message {
	switch turn.Role {
	case llm.RoleSystem, llm.RoleUser, llm.RoleAssistant:
	default:
		turn.Role = llm.RoleUser
	}
	return turn
}
