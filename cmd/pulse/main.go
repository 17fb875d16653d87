package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/cli"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/providers"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulse/pulse.db
	dbPath := os.Getenv("PULSE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulse", "pulse.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	kv := repository.NewSQLiteKVStore(database)

	llmCfg := llm.LoadConfig()

	store := settings.NewStore(kv)
	// The env flag seeds the default; a persisted setting still wins.
	store.SetDefaults(settings.Settings{AIEnabled: llmCfg.Enabled, CacheTTL: settings.DefaultCacheTTL})
	if err := store.Load(context.Background()); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	contextCache := cache.New(kv, store.Get().CacheTTL)
	store.Subscribe(func(s settings.Settings) { contextCache.SetTTL(s.CacheTTL) })

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, observer)

	location := providers.LocationFromEnv()
	weather := providers.NewOpenMeteoClient(location)

	app := &cli.App{
		Context:   intelligence.NewContextService(taskRepo, llmClient, contextCache, store, weather, location),
		Interpret: intelligence.NewInterpretService(llmClient, store),
		Tasks:     taskRepo,
		Settings:  store,
		Cache:     contextCache,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
