// Package memory holds the per-session state of an agent run.
//
// Two structures live here:
//   - Transcript: the append-only record of conversation turns, replayed in
//     full on every model request.
//   - Journal: the key/value site log written by the memo tool.
//
// Neither survives the process: a run starts empty and is discarded at exit.
package memory
