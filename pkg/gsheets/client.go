package gsheets

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// DefaultRange is the append range used when none is configured.
const DefaultRange = "Sheet1!A:C"

// Client wraps the Google Sheets API service.
type Client struct {
	service *sheetsapi.Service
}

// NewClient creates a Sheets client from an OAuth2 token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// AppendRow appends one row of values to the given spreadsheet range and
// returns the number of cells updated.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, appendRange string, values []interface{}) (int64, error) {
	if appendRange == "" {
		appendRange = DefaultRange
	}

	body := &sheetsapi.ValueRange{
		Values: [][]interface{}{values},
	}

	resp, err := c.service.Spreadsheets.Values.
		Append(spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to append row: %w", err)
	}

	if resp.Updates == nil {
		return 0, nil
	}
	return resp.Updates.UpdatedCells, nil
}
