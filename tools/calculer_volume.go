package tools

import (
	"encoding/json"
	"fmt"
	"math"
)

type CalculerVolumeInput struct {
	LongueurM   *float64 `json:"longueur_m" jsonschema_description:"Longueur en mètres"`
	LargeurM    *float64 `json:"largeur_m" jsonschema_description:"Largeur en mètres"`
	ProfondeurM *float64 `json:"profondeur_m" jsonschema_description:"Profondeur/hauteur en mètres"`
	Materiau    *string  `json:"materiau,omitempty" jsonschema:"enum=terre,enum=beton,enum=eau,enum=gravier,default=terre" jsonschema_description:"Type de matériau : terre, beton, eau, gravier"`
}

type CalculerVolumeResult struct {
	VolumeM3   float64 `json:"volume_m3"`
	MasseT     float64 `json:"masse_t"`
	Materiau   string  `json:"materiau"`
	Dimensions string  `json:"dimensions"`
}

// Densités par matériau (t/m³).
var densites = map[string]float64{
	"terre":   1.8,
	"beton":   2.4,
	"eau":     1.0,
	"gravier": 1.6,
}

const densiteParDefaut = 1.8 // matériau hors référentiel

var CalculerVolumeDefinition = ToolDefinition{
	Name: "calculer_volume",
	Description: "Calcule le volume d'une excavation ou d'un ouvrage TP. " +
		"Analogie : la topographie du chantier. " +
		"Retourne le volume en m³ et la masse estimée en tonnes.",
	InputSchema: CalculerVolumeInputSchema,
	Function:    CalculerVolume,
}

var CalculerVolumeInputSchema = GenerateSchema[CalculerVolumeInput]()

func (in CalculerVolumeInput) validate() error {
	var missing []string
	if in.LongueurM == nil {
		missing = append(missing, "longueur_m")
	}
	if in.LargeurM == nil {
		missing = append(missing, "largeur_m")
	}
	if in.ProfondeurM == nil {
		missing = append(missing, "profondeur_m")
	}
	if len(missing) > 0 {
		return &ValidationError{Tool: "calculer_volume", Missing: missing}
	}
	return nil
}

// CalculerVolume computes the volume of a rectangular excavation or
// structure and the corresponding tonnage. An unrecognized materiau is
// echoed unchanged and priced at the default density.
func CalculerVolume(input json.RawMessage) (string, error) {
	in, err := decodeInput[CalculerVolumeInput]("calculer_volume", input)
	if err != nil {
		return "", err
	}
	if err := in.validate(); err != nil {
		return "", err
	}

	materiau := "terre"
	if in.Materiau != nil {
		materiau = *in.Materiau
	}

	volume := *in.LongueurM * *in.LargeurM * *in.ProfondeurM
	densite, ok := densites[materiau]
	if !ok {
		densite = densiteParDefaut
	}
	masse := volume * densite

	return marshalResult(CalculerVolumeResult{
		VolumeM3:   round2(volume),
		MasseT:     round2(masse),
		Materiau:   materiau,
		Dimensions: fmt.Sprintf("%gm × %gm × %gm", *in.LongueurM, *in.LargeurM, *in.ProfondeurM),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
