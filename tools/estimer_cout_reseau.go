package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type EstimerCoutReseauInput struct {
	TypeReseau string   `json:"type_reseau" jsonschema:"enum=eau_potable,enum=assainissement,enum=pluvial,enum=telecom" jsonschema_description:"Nature du réseau"`
	LongueurM  *float64 `json:"longueur_m" jsonschema_description:"Linéaire en mètres"`
	DiametreMM *float64 `json:"diametre_mm,omitempty" jsonschema_description:"Diamètre de canalisation en mm"`
}

type EstimerCoutReseauResult struct {
	TypeReseau string  `json:"type_reseau"`
	LongueurM  float64 `json:"longueur_m"`
	DiametreMM float64 `json:"diametre_mm"`
	CoutMinHT  string  `json:"cout_min_ht"`
	CoutMaxHT  string  `json:"cout_max_ht"`
	Note       string  `json:"note"`
}

// Coûts unitaires réseau (€HT/ml) : [min, max].
var coutsReseau = map[string][2]float64{
	"eau_potable":    {150, 350},
	"assainissement": {200, 500},
	"pluvial":        {180, 420},
	"telecom":        {80, 180},
}

var fourchetteParDefaut = [2]float64{200, 500} // réseau hors référentiel

const diametreParDefaut = 200.0 // mm

var EstimerCoutReseauDefinition = ToolDefinition{
	Name: "estimer_cout_reseau",
	Description: "Estime le coût d'un réseau TP (eau potable, assainissement, pluvial). " +
		"Analogie : le devis du sous-traitant canalisateur. " +
		"Retourne une fourchette de coût en euros HT.",
	InputSchema: EstimerCoutReseauInputSchema,
	Function:    EstimerCoutReseau,
}

var EstimerCoutReseauInputSchema = GenerateSchema[EstimerCoutReseauInput]()

func (in EstimerCoutReseauInput) validate() error {
	var missing []string
	if in.TypeReseau == "" {
		missing = append(missing, "type_reseau")
	}
	if in.LongueurM == nil {
		missing = append(missing, "longueur_m")
	}
	if len(missing) > 0 {
		return &ValidationError{Tool: "estimer_cout_reseau", Missing: missing}
	}
	return nil
}

// EstimerCoutReseau produces a budget range for a linear network. An
// unrecognized type_reseau is echoed unchanged and priced at the default
// range. The cost grows with the square root of the pipe diameter.
func EstimerCoutReseau(input json.RawMessage) (string, error) {
	in, err := decodeInput[EstimerCoutReseauInput]("estimer_cout_reseau", input)
	if err != nil {
		return "", err
	}
	if err := in.validate(); err != nil {
		return "", err
	}

	diametre := diametreParDefaut
	if in.DiametreMM != nil {
		diametre = *in.DiametreMM
	}

	fourchette, ok := coutsReseau[in.TypeReseau]
	if !ok {
		fourchette = fourchetteParDefaut
	}

	coeff := math.Sqrt(diametre / 200)
	coutMin := int(math.Round(fourchette[0] * *in.LongueurM * coeff))
	coutMax := int(math.Round(fourchette[1] * *in.LongueurM * coeff))

	return marshalResult(EstimerCoutReseauResult{
		TypeReseau: in.TypeReseau,
		LongueurM:  *in.LongueurM,
		DiametreMM: diametre,
		CoutMinHT:  formatEuros(coutMin),
		CoutMaxHT:  formatEuros(coutMax),
		Note:       "Fourniture et pose, hors VRD et déviations",
	})
}

// formatEuros renders an amount as "15 000 €HT", grouping thousands with
// spaces.
func formatEuros(montant int) string {
	s := strconv.Itoa(montant)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " €HT"
}
