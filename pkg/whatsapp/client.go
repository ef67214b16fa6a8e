package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultAPIURL is the Meta Graph API base used for sending messages.
const DefaultAPIURL = "https://graph.facebook.com/v17.0"

// Client is the WhatsApp Cloud API client.
type Client struct {
	accessToken   string
	phoneNumberID string
	apiURL        string
	httpClient    *http.Client
}

// NewClient creates a new WhatsApp Cloud API client.
// phoneNumberID is the Meta phone number id the messages are sent from.
func NewClient(accessToken, phoneNumberID string) *Client {
	return &Client{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		apiURL:        DefaultAPIURL,
		httpClient:    &http.Client{},
	}
}

// SetAPIURL overrides the default Graph API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SendText sends a plain text message to a WhatsApp recipient.
func (c *Client) SendText(ctx context.Context, recipientID, text string) error {
	url := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneNumberID)
	payload := SendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               recipientID,
		Type:             "text",
		Text:             TextBody{Body: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp send API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
