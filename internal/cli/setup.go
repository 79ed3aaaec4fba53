package cli

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/Charles-pyt/Frigo-Ai/internal/ai"
	"github.com/Charles-pyt/Frigo-Ai/internal/app"
	"github.com/Charles-pyt/Frigo-Ai/internal/config"
	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

// newApp assembles the orchestrator for one command invocation.
// The returned cleanup closes whatever was opened; call it even on error
// paths once newApp has succeeded.
func newApp(opts *RootOptions) (*app.App, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	cleanup := func() {}

	durable := opts.Durable
	if durable == nil {
		db, err := store.Open(cfg.Database)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		durable = db
		cleanup = func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}
	}

	scratch := opts.Scratch
	if scratch == nil {
		sc, err := store.OpenScratch(cfg.SessionDir)
		if err != nil {
			cleanup()
			return nil, nil, WrapExitError(ExitCommandError, "failed to open session store", err)
		}
		scratch = sc
	}

	client := opts.Client
	if client == nil {
		// Dialing Vertex AI costs a network round trip; defer it until a
		// command actually calls the service.
		client = &lazyClient{cfg: cfg.AI}
	}

	appOpts := []app.Option{}
	if opts.Clock != nil {
		appOpts = append(appOpts, app.WithClock(opts.Clock))
	}

	a, err := app.New(durable, scratch, client, appOpts...)
	if err != nil {
		cleanup()
		return nil, nil, WrapExitError(ExitCommandError, "failed to initialize", err)
	}
	return a, cleanup, nil
}

// loadConfig resolves the config file: an explicit --config path must
// exist; the default path is optional and falls back to defaults.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	path := config.Path()
	if _, err := os.Stat(path); err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

// lazyClient defers Gemini construction until the first call.
type lazyClient struct {
	cfg config.AIConfig

	once  sync.Once
	inner ai.Client
	err   error
}

func (l *lazyClient) dial(ctx context.Context) error {
	l.once.Do(func() {
		l.inner, l.err = ai.NewGemini(ctx, ai.GeminiConfig{
			ProjectID:       l.cfg.ProjectID,
			Location:        l.cfg.Location,
			CredentialsFile: l.cfg.CredentialsFile,
			VisionModel:     l.cfg.VisionModel,
			RecipeModel:     l.cfg.RecipeModel,
		}, slog.Default())
	})
	return l.err
}

// IdentifyFoods implements ai.Client.
func (l *lazyClient) IdentifyFoods(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	if err := l.dial(ctx); err != nil {
		return nil, err
	}
	return l.inner.IdentifyFoods(ctx, image, mimeType)
}

// GenerateRecipes implements ai.Client.
func (l *lazyClient) GenerateRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	if err := l.dial(ctx); err != nil {
		return nil, err
	}
	return l.inner.GenerateRecipes(ctx, ingredients)
}

// commandContext returns the command's context, defaulting to Background
// for direct invocations in tests.
func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
