package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A valid JSON object from the model is passed through unmodified: no field
// is dropped, renamed or validated.
func TestCoerceTaskPlan_ValidJSONPassesThrough(t *testing.T) {
	raw := `{"title": "Sell the house", "steps": ["Step 1: Stage it"], "priority": "High", "estimated_total_time": "6 hours", "description": "overview", "extra_field": 42}`

	result := coerceTaskPlan(raw)

	assert.False(t, result.Fallback)
	assert.Equal(t, "Sell the house", result.Fields["title"])
	assert.Equal(t, "High", result.Fields["priority"])
	assert.Equal(t, []any{"Step 1: Stage it"}, result.Fields["steps"])
	// Unknown fields survive untouched; the model's shape is not enforced.
	assert.Equal(t, float64(42), result.Fields["extra_field"])
}

func TestCoerceTaskPlan_FallbackOnUnparsableText(t *testing.T) {
	raw := "not json"

	result := coerceTaskPlan(raw)

	require.True(t, result.Fallback)
	assert.Equal(t, "Task Organization", result.Fields["title"])
	assert.Equal(t, []string{
		"Step 1: Break down the task into smaller components",
		"Step 2: Prioritize each component",
		"Step 3: Create timeline and deadlines",
		"Step 4: Execute and monitor progress",
	}, result.Fields["steps"])
	assert.Equal(t, "Medium", result.Fields["priority"])
	assert.Equal(t, "2-4 hours", result.Fields["estimated_total_time"])
	// The raw text is preserved byte-for-byte; nothing is lost on fallback.
	assert.Equal(t, raw, result.Fields["description"])
}

// JSON that parses but is not an object (scalar, array, null) still falls back.
func TestCoerceTaskPlan_NonObjectJSONFallsBack(t *testing.T) {
	for _, raw := range []string{`"just a string"`, `[1, 2, 3]`, `null`, `42`, ``} {
		result := coerceTaskPlan(raw)
		assert.True(t, result.Fallback, "input %q should fall back", raw)
		assert.Equal(t, raw, result.Fields["description"])
	}
}

func TestCoerceMeetingPlan_ValidJSONPassesThrough(t *testing.T) {
	raw := `{"title": "Listing sync", "agenda": ["Intro"], "duration": "30 minutes", "preparation": ["Read the brief"], "details": "weekly"}`

	result := coerceMeetingPlan(raw)

	assert.False(t, result.Fallback)
	assert.Equal(t, "Listing sync", result.Fields["title"])
	assert.Equal(t, "30 minutes", result.Fields["duration"])
	assert.Equal(t, []any{"Intro"}, result.Fields["agenda"])
}

func TestCoerceMeetingPlan_FallbackOnUnparsableText(t *testing.T) {
	raw := "Sure! Here is your agenda: ..."

	result := coerceMeetingPlan(raw)

	require.True(t, result.Fallback)
	assert.Equal(t, "Meeting Planning", result.Fields["title"])
	assert.Equal(t, []string{
		"Welcome and introductions",
		"Review objectives and goals",
		"Discussion of key topics",
		"Action items and next steps",
	}, result.Fields["agenda"])
	assert.Equal(t, "60 minutes", result.Fields["duration"])
	assert.Equal(t, []string{
		"Review relevant documents",
		"Prepare questions and talking points",
	}, result.Fields["preparation"])
	assert.Equal(t, raw, result.Fields["details"])
}
