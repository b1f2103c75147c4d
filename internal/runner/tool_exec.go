package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/VladimirB-prog/ai-agents-showcase/internal/telemetry"
	"github.com/VladimirB-prog/ai-agents-showcase/tools"
)

// execTool dispatches one tool invocation and always produces a tool_result
// block for it. Failures become structured error payloads the model can
// read; nothing escapes past this boundary. The returned string is the exact
// payload placed in the block.
func (r *Runner) execTool(ctx context.Context, id, name string, input json.RawMessage) (anthropic.ContentBlockParamUnion, string) {
	var def *tools.ToolDefinition
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			def = &r.Tools[i]
			break
		}
	}

	runID, _ := telemetry.RunIDFromContext(ctx)

	// Helper to emit a tool_exec event
	emit := func(durationMs int64, inputSize, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   name,
			"duration_ms": durationMs,
			"input_size":  inputSize,
			"output_size": outputSize,
			"run_id":      runID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()
	inSize := len(input)

	if def == nil {
		payload := unknownToolPayload(name)
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool not found")
		return anthropic.NewToolResultBlock(id, payload, true), payload
	}

	out, err := invoke(def, input)
	if err != nil {
		payload := toolErrorPayload(name, input, err)
		// Events carry a generic error string, never the payload itself.
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool error")
		return anthropic.NewToolResultBlock(id, payload, true), payload
	}
	emit(time.Since(start).Milliseconds(), inSize, len(out), "")
	return anthropic.NewToolResultBlock(id, out, false), out
}

// invoke runs the handler behind a panic guard so a defective tool cannot
// crash the loop.
func invoke(def *tools.ToolDefinition, input json.RawMessage) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panique outil : %v", rec)
		}
	}()
	return def.Function(input)
}

func unknownToolPayload(name string) string {
	b, err := json.Marshal(struct {
		Erreur string `json:"erreur"`
	}{Erreur: fmt.Sprintf("Outil inconnu : %s", name)})
	if err != nil {
		return `{"erreur":"Outil inconnu"}`
	}
	return string(b)
}

// toolErrorPayload wraps a handler failure with the tool name and the
// original input so the model can correct itself.
func toolErrorPayload(name string, input json.RawMessage, cause error) string {
	b, err := json.Marshal(struct {
		Erreur string          `json:"erreur"`
		Outil  string          `json:"outil"`
		Input  json.RawMessage `json:"input"`
	}{Erreur: cause.Error(), Outil: name, Input: input})
	if err != nil {
		b, _ = json.Marshal(struct {
			Erreur string `json:"erreur"`
			Outil  string `json:"outil"`
		}{Erreur: cause.Error(), Outil: name})
		return string(b)
	}
	return string(b)
}
