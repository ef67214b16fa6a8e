package model

// Message roles as persisted in the conversation log.
const (
	RoleHuman = "human"
	RoleAI    = "ai"
)

// ChatMessage is one decoded turn of a conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
