package tools

import (
	"encoding/json"

	"github.com/VladimirB-prog/ai-agents-showcase/memory"
)

type MemoChantierInput struct {
	Cle    *string `json:"cle" jsonschema_description:"Identifiant de la note (ex: 'volume_bassin')"`
	Valeur *string `json:"valeur" jsonschema_description:"Valeur ou texte à mémoriser"`
}

type MemoChantierResult struct {
	Status  string            `json:"status"`
	Cle     string            `json:"cle"`
	Journal map[string]string `json:"journal"`
}

var MemoChantierInputSchema = GenerateSchema[MemoChantierInput]()

func (in MemoChantierInput) validate() error {
	var missing []string
	if in.Cle == nil {
		missing = append(missing, "cle")
	}
	if in.Valeur == nil {
		missing = append(missing, "valeur")
	}
	if len(missing) > 0 {
		return &ValidationError{Tool: "memo_chantier", Missing: missing}
	}
	return nil
}

// MemoChantierDefinition binds the memo tool to one session's journal.
// Writing an existing key overwrites the previous note; the result carries
// a snapshot of the whole journal.
func MemoChantierDefinition(j *memory.Journal) ToolDefinition {
	return ToolDefinition{
		Name: "memo_chantier",
		Description: "Mémorise une information clé dans le journal de chantier de la session. " +
			"Analogie : le journal de chantier papier du CdT. " +
			"Utile pour stocker des résultats intermédiaires à réutiliser.",
		InputSchema: MemoChantierInputSchema,
		Function: func(input json.RawMessage) (string, error) {
			return memoChantier(j, input)
		},
	}
}

func memoChantier(j *memory.Journal, input json.RawMessage) (string, error) {
	in, err := decodeInput[MemoChantierInput]("memo_chantier", input)
	if err != nil {
		return "", err
	}
	if err := in.validate(); err != nil {
		return "", err
	}

	j.Set(*in.Cle, *in.Valeur)

	return marshalResult(MemoChantierResult{
		Status:  "mémorisé",
		Cle:     *in.Cle,
		Journal: j.Snapshot(),
	})
}
