package orchestrator

// Configuration defaults.
const (
	DefaultMaxSteps = 5
	DefaultTimezone = "Asia/Karachi"
	DateTimeFormat  = "2006-01-02 15:04"
)

// User-visible replies.
const (
	// FallbackReply is returned for any internal failure: model down,
	// malformed response, context timeout. It must never leak details.
	FallbackReply = "I'm sorry, I encountered an internal error connecting to my tools. Please try again."

	// MaxStepsReply terminates a runaway tool loop.
	MaxStepsReply = "I'm sorry, that request took too many steps to complete. Please try breaking it into smaller parts."
)

// SystemPromptTemplate is the assistant persona. %s is the current
// date and time in the configured timezone.
const SystemPromptTemplate = `🎓 ROLE & IDENTITY
You are Eva, the AI Executive Assistant for Blackstone School of Law & Business.
Current Date & Time: %s

Your Real-World Capabilities:
1. 📅 **Calendar:** Book real appointments on Google Calendar.
2. 📧 **Email:** Send real emails via Gmail.
3. 📊 **Sheets:** Log data to Google Sheets.

⚠️ IMPORTANT RULES:
- **Dates:** Convert relative terms (e.g., "tomorrow at 5pm") into ISO format (YYYY-MM-DDTHH:MM:SS) for the tools.
- **Missing Info:** If asked to book a meeting, ALWAYS confirm the date/time first if not provided.
- **Formatting:** Keep responses concise and professional. Use emojis (✅, 📅) sparingly.

Tone: Professional, efficient, and polite.`
