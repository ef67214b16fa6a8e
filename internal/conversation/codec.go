package conversation

import (
	"encoding/json"

	"eva-assistant/internal/model"
)

// encodedMessage covers every known on-disk message shape at once.
// The producer's encoding has drifted across versions: the payload has
// lived under data.content, directly under content, and under
// kwargs.content. Decode tries them in that priority order.
type encodedMessage struct {
	Type string `json:"type"`
	Data *struct {
		Content string `json:"content"`
	} `json:"data,omitempty"`
	Content string `json:"content,omitempty"`
	Kwargs *struct {
		Content string `json:"content"`
	} `json:"kwargs,omitempty"`
}

// Encode serializes one conversation turn in the current storage shape.
func Encode(role, text string) ([]byte, error) {
	msg := encodedMessage{
		Type: role,
		Data: &struct {
			Content string `json:"content"`
		}{Content: text},
	}
	return json.Marshal(msg)
}

// Decode extracts a chat message from a stored blob. It reports ok=false
// for blobs that are not JSON or that match none of the known shapes;
// callers skip those entries rather than failing the whole read.
func Decode(raw []byte) (model.ChatMessage, bool) {
	var msg encodedMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return model.ChatMessage{}, false
	}

	var content string
	switch {
	case msg.Data != nil && msg.Data.Content != "":
		content = msg.Data.Content
	case msg.Content != "":
		content = msg.Content
	case msg.Kwargs != nil && msg.Kwargs.Content != "":
		content = msg.Kwargs.Content
	}

	if content == "" {
		return model.ChatMessage{}, false
	}

	role := msg.Type
	if role == "" {
		role = "unknown"
	}

	return model.ChatMessage{Role: role, Text: content}, true
}
