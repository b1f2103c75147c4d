package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/VladimirB-prog/ai-agents-showcase/internal/config"
	"github.com/VladimirB-prog/ai-agents-showcase/internal/prompts"
	"github.com/VladimirB-prog/ai-agents-showcase/internal/provider"
	"github.com/VladimirB-prog/ai-agents-showcase/internal/runner"
	"github.com/VladimirB-prog/ai-agents-showcase/memory"
	"github.com/VladimirB-prog/ai-agents-showcase/tools"
)

func main() {
	os.Exit(run())
}

func run() int {
	task := flag.String("task", prompts.DefaultMission, "Mission à donner à l'agent")
	model := flag.String("model", string(provider.DefaultModel), "Modèle Anthropic")
	maxIterations := flag.Int("max-iterations", runner.DefaultMaxIterations, "Nombre max d'itérations de la boucle agentique")
	quiet := flag.Bool("quiet", false, "Mode silencieux : affiche uniquement la réponse finale")
	configPath := flag.String("config", "", "Chemin d'un fichier de configuration YAML")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "❌ ANTHROPIC_API_KEY non trouvée. Exportez-la ou renseignez config.yaml.")
		fmt.Println("\n💡 Créez un fichier config.yaml :")
		fmt.Println(`   echo 'anthropic: {api_key: "sk-ant-..."}' > config.yaml`)
		return 1
	}

	fmt.Printf("\n%s\n", strings.Repeat("═", 60))
	fmt.Println("  🏗️  AGENT TRAVAUX PUBLICS — SDK ANTHROPIC")
	fmt.Printf("  Modèle : %s\n", *model)
	fmt.Printf("  Date   : %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Println(strings.Repeat("═", 60))

	journal := memory.NewJournal()
	client := provider.NewClient(apiKey)

	r := runner.New(client, anthropic.Model(*model), tools.Registry(journal))
	r.MaxIterations = *maxIterations
	r.Verbose = !*quiet
	r.Logger = logger

	outcome, err := r.Run(context.Background(), *task)
	if err != nil {
		switch {
		case provider.IsAuthenticationError(err):
			fmt.Fprintln(os.Stderr, "❌ Clé API invalide. Vérifiez ANTHROPIC_API_KEY.")
		case provider.IsRateLimitError(err):
			fmt.Fprintln(os.Stderr, "❌ Rate limit atteint. Attendez quelques secondes.")
		default:
			fmt.Fprintf(os.Stderr, "❌ Erreur inattendue : %v\n", err)
		}
		return 1
	}

	if outcome.Deliverable != "" {
		fmt.Printf("\n%s\n", strings.Repeat("═", 50))
		fmt.Println("  ✅ LIVRAISON FINALE DE L'AGENT")
		fmt.Println(strings.Repeat("═", 50))
		fmt.Println(outcome.Deliverable)
	}

	// The journal renders only after a natural completion; an aborted run
	// may hold entries from a mission still in flight.
	if outcome.Cause == runner.StopCauseComplete && journal.Len() > 0 {
		fmt.Println("\n📓 Journal de chantier :")
		for _, k := range journal.Keys() {
			v, _ := journal.Get(k)
			fmt.Printf("   • %s: %s\n", k, v)
		}
	}
	return 0
}
