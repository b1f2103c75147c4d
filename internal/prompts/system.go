// Package prompts holds the fixed French instruction texts sent to the
// model.
package prompts

// SystemPrompt frames the agent as a public-works engineering assistant.
// It is sent unchanged with every request of a session.
const SystemPrompt = `Tu es un assistant expert en travaux publics et ingénierie TP.
Tu aides à calculer des volumes, estimer des coûts de réseaux et synthétiser des analyses chantier.
Utilise les outils disponibles pour répondre avec précision.
Mémorise les résultats importants dans le journal de chantier.
Réponds en français, de manière professionnelle et structurée.
Termine toujours par un récapitulatif clair des résultats.`

// DefaultMission is the demonstration task used when the CLI is started
// without -task.
const DefaultMission = "J'ai un chantier avec : un bassin de rétention de 60m×25m×2.5m en béton, " +
	"et 350ml de réseau d'assainissement DN300. " +
	"Calcule le volume du bassin, estime le coût du réseau, " +
	"et mémorise les deux résultats dans le journal de chantier. " +
	"Donne-moi ensuite une synthèse chiffrée."
