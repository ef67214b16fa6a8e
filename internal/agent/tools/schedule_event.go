package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eva-assistant/internal/agent"
	"eva-assistant/pkg/gcalendar"
	pkgLog "eva-assistant/pkg/log"
)

// CalendarClient abstracts Google Calendar for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// ScheduleEventTool books an event on the connected Google Calendar.
type ScheduleEventTool struct {
	calendar   CalendarClient
	calendarID string
	timezone   string
	l          pkgLog.Logger
}

func NewScheduleEventTool(calendar CalendarClient, calendarID, timezone string, l pkgLog.Logger) *ScheduleEventTool {
	if timezone == "" {
		timezone = "Asia/Karachi"
	}
	return &ScheduleEventTool{
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}

func (t *ScheduleEventTool) Name() string {
	return "add_calendar_event"
}

func (t *ScheduleEventTool) Description() string {
	return "Creates a Google Calendar event. Format dates as ISO string: '2025-11-20T14:00:00'."
}

func (t *ScheduleEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"summary": map[string]interface{}{
				"type":        "string",
				"description": "Title of the meeting (e.g., \"Consultation with Ali\")",
			},
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "ISO format start time (YYYY-MM-DDTHH:MM:SS)",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "ISO format end time (YYYY-MM-DDTHH:MM:SS)",
			},
			"email": map[string]interface{}{
				"type":        "string",
				"description": "(Optional) Attendee email to invite",
			},
		},
		"required": []string{"summary", "start_time", "end_time"},
	}
}

type scheduleEventInput struct {
	Summary   string `json:"summary"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Email     string `json:"email"`
}

func (t *ScheduleEventTool) Execute(ctx context.Context, args map[string]interface{}) string {
	if t.calendar == nil {
		return "❌ Error: Google Calendar is not configured."
	}

	inputBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("❌ Failed to read arguments: %v", err)
	}

	var params scheduleEventInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return fmt.Sprintf("❌ Failed to parse arguments: %v", err)
	}

	loc, err := time.LoadLocation(t.timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := parseISOTime(params.StartTime, loc)
	if err != nil {
		return fmt.Sprintf("❌ Invalid start_time %q: use YYYY-MM-DDTHH:MM:SS", params.StartTime)
	}
	end, err := parseISOTime(params.EndTime, loc)
	if err != nil {
		return fmt.Sprintf("❌ Invalid end_time %q: use YYYY-MM-DDTHH:MM:SS", params.EndTime)
	}

	t.l.Infof(ctx, "add_calendar_event: %q from %s to %s", params.Summary, params.StartTime, params.EndTime)

	event, err := t.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:    t.calendarID,
		Summary:       params.Summary,
		StartTime:     start,
		EndTime:       end,
		Timezone:      t.timezone,
		AttendeeEmail: params.Email,
	})
	if err != nil {
		t.l.Errorf(ctx, "add_calendar_event failed: %v", err)
		return fmt.Sprintf("❌ Failed to create event: %v", err)
	}

	return fmt.Sprintf("✅ Event created successfully: %s", event.HtmlLink)
}

// parseISOTime accepts the bare ISO shape the model is instructed to emit
// plus RFC3339 in case it includes an offset anyway.
func parseISOTime(s string, loc *time.Location) (time.Time, error) {
	if ts, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}

var _ agent.Tool = (*ScheduleEventTool)(nil)
