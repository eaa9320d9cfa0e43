// Command drivelens serves a single-page tool that authenticates a user
// against Google Drive, lists their files, extracts text/image content
// from a chosen subset, and sends it with a prompt to a hosted model.
//
// Examples:
//
//	export GEMINI_API_KEY=...
//	go run ./cmd/drivelens -client-secret client_secret.json \
//	    -redirect-url http://localhost:8080/oauth2/callback
//
//	export OPENAI_API_KEY=...
//	go run ./cmd/drivelens -provider openai -model gpt-4o-mini ...
package main

import (
	"context"
	"flag"
	"log"

	"github.com/drivelens/drivelens/src/auth"
	"github.com/drivelens/drivelens/src/config"
	"github.com/drivelens/drivelens/src/models"
	"github.com/drivelens/drivelens/src/web"
)

var (
	flagAddr     = flag.String("addr", "", "Listen address (default :8080)")
	flagProvider = flag.String("provider", "", "Model provider: gemini|openai|anthropic|ollama|dummy (default gemini)")
	flagModel    = flag.String("model", "", "Model ID for the selected provider")
	flagSecret   = flag.String("client-secret", "", "Path to the Google OAuth client secret JSON")
	flagRedirect = flag.String("redirect-url", "", "OAuth2 redirect URL")
	flagEnv      = flag.String("env", "", "Path to a .env file")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, cfgErr := config.Load(config.Options{
		EnvFile:          *flagEnv,
		ListenAddr:       *flagAddr,
		Provider:         *flagProvider,
		Model:            *flagModel,
		ClientSecretPath: *flagSecret,
		RedirectURL:      *flagRedirect,
	})

	var flow *auth.Flow
	if cfgErr == nil {
		flow, cfgErr = auth.NewFlow(cfg.ClientSecret, cfg.RedirectURL)
	}
	if cfgErr != nil {
		// The page renders this inline; the flow halts before auth.
		log.Printf("[config] %v", cfgErr)
	}

	agent, err := models.NewProvider(ctx, cfg.Provider, cfg.Model)
	if err != nil {
		// Analyze requests will come back as an ERROR reply instead.
		log.Printf("[models] provider %s unavailable: %v", cfg.Provider, err)
		agent = nil
	} else {
		log.Printf("[models] using %s (%s)", cfg.Provider, cfg.Model)
	}

	srv := web.NewServer(web.Params{
		Flow:      flow,
		Agent:     agent,
		ConfigErr: cfgErr,
	})
	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
