package tools

import "github.com/VladimirB-prog/ai-agents-showcase/memory"

// Registry returns all tool definitions wired for one session. The slice
// order is the catalog order presented to the model on every request.
//
// Names are not checked against handlers here: a catalog entry that resolves
// to nothing surfaces as an "Outil inconnu" result when the model requests
// it, not before.
func Registry(j *memory.Journal) []ToolDefinition {
	return []ToolDefinition{
		CalculerVolumeDefinition,
		EstimerCoutReseauDefinition,
		MemoChantierDefinition(j),
	}
}
