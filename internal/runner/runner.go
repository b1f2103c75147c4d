package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"

	"github.com/VladimirB-prog/ai-agents-showcase/internal/prompts"
	"github.com/VladimirB-prog/ai-agents-showcase/internal/telemetry"
	"github.com/VladimirB-prog/ai-agents-showcase/memory"
	"github.com/VladimirB-prog/ai-agents-showcase/tools"
)

// StopCause explains why a run ended.
type StopCause string

const (
	// StopCauseComplete: the model delivered a final answer (end_turn).
	StopCauseComplete StopCause = "complete"
	// StopCauseMaxIterations: the iteration budget ran out first.
	StopCauseMaxIterations StopCause = "max_iterations"
	// StopCauseUnexpected: the model stopped for a reason the loop does not
	// handle (max_tokens, refusal, ...).
	StopCauseUnexpected StopCause = "unexpected_stop"
)

// ForcedStopDeliverable replaces the final answer when the iteration budget
// runs out.
const ForcedStopDeliverable = "Agent arrêté : limite d'itérations atteinte."

const DefaultMaxIterations = 10

const maxTokens = 4096

// Usage accumulates token counts across every request of a run.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Outcome is the terminal state of one run.
type Outcome struct {
	Deliverable string
	Iterations  int
	Cause       StopCause
	Usage       Usage
}

type Runner struct {
	Client        *anthropic.Client
	Model         anthropic.Model
	Tools         []tools.ToolDefinition
	System        string
	MaxIterations int
	Verbose       bool
	Logger        *slog.Logger
}

func New(client *anthropic.Client, model anthropic.Model, toolDefs []tools.ToolDefinition) *Runner {
	return &Runner{
		Client:        client,
		Model:         model,
		Tools:         toolDefs,
		System:        prompts.SystemPrompt,
		MaxIterations: DefaultMaxIterations,
		Logger:        slog.Default(),
	}
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// Run drives the loop for one mission until the model delivers a final
// answer, the iteration budget runs out, or the exchange fails.
//
// Transport errors are returned as-is: nothing is retried here, and the
// request in flight is the only suspension point of the loop.
func (r *Runner) Run(ctx context.Context, mission string) (*Outcome, error) {
	runID := uuid.NewString()
	ctx = telemetry.WithRunID(ctx, runID)
	log := r.Logger.With("run_id", runID)

	transcript := memory.NewTranscript(anthropic.NewUserMessage(anthropic.NewTextBlock(mission)))

	log.Info("agent started", "model", r.Model, "max_iterations", r.MaxIterations)
	log.Info("mission", "text", truncate(mission, 80))
	telemetry.Emit("loop_start", map[string]any{
		"run_id":         runID,
		"model":          string(r.Model),
		"max_iterations": r.MaxIterations,
	})

	outcome := &Outcome{}
	for iteration := 1; iteration <= r.MaxIterations; iteration++ {
		outcome.Iterations = iteration
		if r.Verbose {
			fmt.Printf("\n%s\n", strings.Repeat("─", 50))
			fmt.Printf("  🔄 ITÉRATION %d/%d\n", iteration, r.MaxIterations)
			fmt.Println(strings.Repeat("─", 50))
		}

		// The whole transcript goes out again; the completion service holds
		// no state between requests.
		msg, err := r.Client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     r.Model,
			MaxTokens: int64(maxTokens),
			System:    []anthropic.TextBlockParam{{Text: r.System}},
			Tools:     r.anthropicTools(),
			Messages:  transcript.Messages(),
		})
		if err != nil {
			return nil, err
		}

		outcome.Usage.InputTokens += msg.Usage.InputTokens
		outcome.Usage.OutputTokens += msg.Usage.OutputTokens

		log.Info("response received", "iteration", iteration, "stop_reason", msg.StopReason)
		telemetry.Emit("request_done", map[string]any{
			"run_id":         runID,
			"iteration":      iteration,
			"stop_reason":    string(msg.StopReason),
			"transcript_len": transcript.Len(),
			"input_tokens":   msg.Usage.InputTokens,
			"output_tokens":  msg.Usage.OutputTokens,
		})

		switch msg.StopReason {
		case anthropic.StopReasonEndTurn:
			outcome.Cause = StopCauseComplete
			outcome.Deliverable = firstText(msg)
			r.emitLoopEnd(runID, outcome)
			return outcome, nil

		case anthropic.StopReasonToolUse:
			transcript.Append(msg.ToParam())

			toolResults := []anthropic.ContentBlockParamUnion{}
			for _, block := range msg.Content {
				v, ok := block.AsAny().(anthropic.ToolUseBlock)
				if !ok {
					continue
				}
				input := json.RawMessage(v.JSON.Input.Raw())
				if r.Verbose {
					fmt.Printf("\n  🔧 Outil demandé : %s\n", v.Name)
					fmt.Printf("     Paramètres   : %s\n", string(input))
				}
				res, payload := r.execTool(ctx, v.ID, v.Name, input)
				if r.Verbose {
					fmt.Printf("     Résultat     : %s\n", payload)
				}
				toolResults = append(toolResults, res)
			}
			transcript.Append(anthropic.NewUserMessage(toolResults...))

		default:
			// Hard stop: no retry, no synthetic user turn, empty deliverable.
			log.Warn("unexpected stop", "stop_reason", msg.StopReason)
			outcome.Cause = StopCauseUnexpected
			r.emitLoopEnd(runID, outcome)
			return outcome, nil
		}
	}

	log.Warn("iteration budget exhausted", "max_iterations", r.MaxIterations)
	outcome.Cause = StopCauseMaxIterations
	outcome.Deliverable = ForcedStopDeliverable
	r.emitLoopEnd(runID, outcome)
	return outcome, nil
}

func (r *Runner) emitLoopEnd(runID string, o *Outcome) {
	telemetry.Emit("loop_end", map[string]any{
		"run_id":        runID,
		"iterations":    o.Iterations,
		"stop_cause":    string(o.Cause),
		"input_tokens":  o.Usage.InputTokens,
		"output_tokens": o.Usage.OutputTokens,
	})
}

// firstText returns the text of the first text block in msg, if any.
func firstText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if v, ok := block.AsAny().(anthropic.TextBlock); ok {
			return v.Text
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
