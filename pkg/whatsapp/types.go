package whatsapp

import "encoding/json"

// WebhookPayload is the envelope Meta posts to the webhook endpoint.
// Every level is optional: status updates, reactions and future event kinds
// arrive through the same endpoint with different inner shapes.
type WebhookPayload struct {
	Object string  `json:"object,omitempty"`
	Entry  []Entry `json:"entry,omitempty"`
}

// Entry is one account-level entry in a webhook payload.
type Entry struct {
	ID      string   `json:"id,omitempty"`
	Changes []Change `json:"changes,omitempty"`
}

// Change is one field change inside an entry.
type Change struct {
	Field string `json:"field,omitempty"`
	Value Value  `json:"value,omitempty"`
}

// Value carries the actual event payload of a change.
type Value struct {
	MessagingProduct string            `json:"messaging_product,omitempty"`
	Messages         []IncomingMessage `json:"messages,omitempty"`
	Statuses         []json.RawMessage `json:"statuses,omitempty"`
}

// IncomingMessage is one inbound message from a WhatsApp user.
type IncomingMessage struct {
	From      string    `json:"from,omitempty"`
	ID        string    `json:"id,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	Type      string    `json:"type,omitempty"`
	Text      *TextBody `json:"text,omitempty"`
}

// TextBody is the text payload of a message, inbound or outbound.
type TextBody struct {
	Body string `json:"body"`
}

// SendMessageRequest is the payload for the Cloud API /messages endpoint.
type SendMessageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}
