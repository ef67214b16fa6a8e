package notifier_test

import (
	"context"
	"errors"
	"testing"

	"eva-assistant/internal/notifier"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockSender struct {
	gotRecipient string
	gotText      string
	calls        int
	err          error
}

func (m *mockSender) SendText(ctx context.Context, recipientID, text string) error {
	m.calls++
	m.gotRecipient = recipientID
	m.gotText = text
	return m.err
}

func TestDeliver(t *testing.T) {
	sender := &mockSender{}
	n := notifier.New(sender, mockLogger{})

	n.Deliver(context.Background(), "923001234567", "Your event is booked.")

	if sender.calls != 1 {
		t.Fatalf("expected 1 send, got %d", sender.calls)
	}
	if sender.gotRecipient != "923001234567" || sender.gotText != "Your event is booked." {
		t.Errorf("unexpected send: to=%q text=%q", sender.gotRecipient, sender.gotText)
	}
}

func TestDeliver_SendFailureIsSwallowed(t *testing.T) {
	sender := &mockSender{err: errors.New("graph api 500")}
	n := notifier.New(sender, mockLogger{})

	// Must not panic or propagate.
	n.Deliver(context.Background(), "923001234567", "hello")

	if sender.calls != 1 {
		t.Fatalf("expected 1 attempted send, got %d", sender.calls)
	}
}

func TestDeliver_SkipsEmptyText(t *testing.T) {
	sender := &mockSender{}
	n := notifier.New(sender, mockLogger{})

	n.Deliver(context.Background(), "923001234567", "")

	if sender.calls != 0 {
		t.Errorf("empty reply should not be sent, got %d sends", sender.calls)
	}
}
