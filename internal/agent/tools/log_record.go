package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"eva-assistant/internal/agent"
	pkgLog "eva-assistant/pkg/log"
)

// SheetsClient abstracts Google Sheets for mocking.
type SheetsClient interface {
	AppendRow(ctx context.Context, spreadsheetID, appendRange string, values []interface{}) (int64, error)
}

// LogRecordTool appends a row to the connected Google Sheet.
type LogRecordTool struct {
	sheets        SheetsClient
	spreadsheetID string
	l             pkgLog.Logger
}

func NewLogRecordTool(sheets SheetsClient, spreadsheetID string, l pkgLog.Logger) *LogRecordTool {
	return &LogRecordTool{
		sheets:        sheets,
		spreadsheetID: spreadsheetID,
		l:             l,
	}
}

func (t *LogRecordTool) Name() string {
	return "add_expense_row"
}

func (t *LogRecordTool) Description() string {
	return "Appends a row to the connected Google Sheet."
}

func (t *LogRecordTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "The date of the entry",
			},
			"item": map[string]interface{}{
				"type":        "string",
				"description": "Description of the item or log",
			},
			"amount": map[string]interface{}{
				"type":        "string",
				"description": "The value or cost associated",
			},
		},
		"required": []string{"date", "item", "amount"},
	}
}

type logRecordInput struct {
	Date   string `json:"date"`
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

func (t *LogRecordTool) Execute(ctx context.Context, args map[string]interface{}) string {
	if t.sheets == nil {
		return "❌ Error: Google Sheets is not configured."
	}
	if t.spreadsheetID == "" {
		return "❌ Error: GOOGLE_SHEET_ID is not configured."
	}

	inputBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("❌ Failed to read arguments: %v", err)
	}

	var params logRecordInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return fmt.Sprintf("❌ Failed to parse arguments: %v", err)
	}

	t.l.Infof(ctx, "add_expense_row: date=%s item=%q", params.Date, params.Item)

	cells, err := t.sheets.AppendRow(ctx, t.spreadsheetID, "",
		[]interface{}{params.Date, params.Item, params.Amount})
	if err != nil {
		t.l.Errorf(ctx, "add_expense_row failed: %v", err)
		return fmt.Sprintf("❌ Failed to update sheet: %v", err)
	}

	return fmt.Sprintf("✅ Data logged to sheet. %d cells updated.", cells)
}

var _ agent.Tool = (*LogRecordTool)(nil)
