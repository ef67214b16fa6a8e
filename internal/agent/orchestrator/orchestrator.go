package orchestrator

import (
	"context"
	"fmt"

	"eva-assistant/internal/conversation"
	"eva-assistant/internal/model"
	"eva-assistant/pkg/gemini"
)

// Respond processes one inbound message for a session and returns the
// reply text. It never fails: any internal error degrades to the fixed
// fallback reply so the caller always has something to deliver.
func (o *Orchestrator) Respond(ctx context.Context, sessionID, inputText string) string {
	release := o.locks.acquire(sessionID)
	defer release()

	history, err := o.store.History(ctx, sessionID)
	if err != nil {
		// Respond without memory rather than not at all.
		o.l.Errorf(ctx, "orchestrator: failed to load history for %s: %v", sessionID, err)
		history = nil
	}

	final, err := o.runToolLoop(ctx, history, inputText)
	if err != nil {
		o.l.Errorf(ctx, "orchestrator: session %s: %v", sessionID, err)
		return FallbackReply
	}

	o.persistTurn(ctx, sessionID, inputText, final)
	return final
}

// runToolLoop runs the Reason → Act → Observe cycle until the model
// produces a final answer or the step cap is hit.
func (o *Orchestrator) runToolLoop(ctx context.Context, history []model.ChatMessage, inputText string) (string, error) {
	contents := historyToContents(history)
	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: inputText}},
	})

	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: buildSystemPrompt(o.timezone)}},
		},
		Contents: contents,
	}
	if decls := o.registry.ToFunctionDeclarations(); len(decls) > 0 {
		req.Tools = []gemini.Tool{{FunctionDeclarations: decls}}
	}

	for step := 0; step < o.maxSteps; step++ {
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("model error at step %d: %w", step+1, err)
		}

		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("empty model response at step %d", step+1)
		}

		part := resp.Candidates[0].Content.Parts[0]

		if part.FunctionCall == nil {
			if part.Text == "" {
				return "", fmt.Errorf("model returned neither text nor a tool call at step %d", step+1)
			}
			return part.Text, nil
		}

		toolName := part.FunctionCall.Name
		o.l.Infof(ctx, "orchestrator: step %d/%d calling tool %s", step+1, o.maxSteps, toolName)

		var result string
		if tool, ok := o.registry.Get(toolName); ok {
			result = tool.Execute(ctx, part.FunctionCall.Args)
		} else {
			o.l.Warnf(ctx, "orchestrator: model requested unknown tool %q", toolName)
			result = fmt.Sprintf("❌ Error: tool %q is not available.", toolName)
		}

		req.Contents = append(req.Contents, gemini.Content{
			Role:  "model",
			Parts: []gemini.Part{{FunctionCall: part.FunctionCall}},
		})
		req.Contents = append(req.Contents, gemini.Content{
			Role: "function",
			Parts: []gemini.Part{{
				FunctionResponse: &gemini.FunctionResponse{
					Name:     toolName,
					Response: map[string]string{"result": result},
				},
			}},
		})
	}

	o.l.Warnf(ctx, "orchestrator: exceeded max steps (%d)", o.maxSteps)
	return MaxStepsReply, nil
}

// persistTurn appends the input and output of a completed exchange.
// Store errors are logged, not propagated: the reply is already composed
// and losing one memory turn is better than losing the reply.
func (o *Orchestrator) persistTurn(ctx context.Context, sessionID, inputText, finalText string) {
	if raw, err := conversation.Encode(model.RoleHuman, inputText); err == nil {
		if err := o.store.Append(ctx, sessionID, raw); err != nil {
			o.l.Errorf(ctx, "orchestrator: failed to append human turn for %s: %v", sessionID, err)
		}
	}
	if raw, err := conversation.Encode(model.RoleAI, finalText); err == nil {
		if err := o.store.Append(ctx, sessionID, raw); err != nil {
			o.l.Errorf(ctx, "orchestrator: failed to append ai turn for %s: %v", sessionID, err)
		}
	}
}
