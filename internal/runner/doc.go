// Package runner drives the bounded agentic loop against the Anthropic
// Messages API and dispatches tool calls.
//
// Invariants:
//   - The full transcript is replayed on every request; turns are never
//     rewritten, reordered, or trimmed.
//   - Every tool_use block of an assistant turn is answered, in request
//     order, by exactly one tool_result in the single user turn that
//     follows.
//   - At most MaxIterations requests are sent per run; the budget running
//     out replaces the deliverable with a fixed sentinel.
//
// Flow:
//
//	user(mission) -> assistant(tool_use) -> user(tool_result) -> ... -> assistant(text)
package runner
