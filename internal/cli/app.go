package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/astraldesk/astral/internal/config"
	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/engine"
	"github.com/astraldesk/astral/internal/llm"
	"github.com/astraldesk/astral/internal/profile"
)

// App holds process configuration and builds engine instances for CLI
// commands. Commands resolve their profile lazily so the --profile flag
// can override the environment.
type App struct {
	Cfg    config.Config
	LLM    llm.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool

	// newClient builds the completion client; swapped out in tests.
	newClient func(cfg llm.Config, observer llm.Observer) llm.Client
}

// NewApp creates an App around loaded configuration.
func NewApp(cfg config.Config, llmCfg llm.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Cfg:           cfg,
		LLM:           llmCfg,
		Logger:        logger,
		IsInteractive: func() bool { return false },
		newClient:     llm.NewGeminiClient,
	}
}

// ResolveProfile loads the profile named by the --profile flag, falling
// back to the configured default. A ref containing a path separator or a
// YAML extension is read from disk; anything else is a built-in name.
func (a *App) ResolveProfile(ref string) (*profile.Profile, error) {
	if ref == "" {
		ref = a.Cfg.Profile
	}
	if strings.ContainsAny(ref, `/\`) || strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") {
		return profile.Load(ref)
	}
	return profile.Builtin(ref)
}

// LoadDataset loads the reference data for a profile. An explicit data
// directory overrides the embedded documents; load failures degrade to
// missing categories rather than aborting the command.
func (a *App) LoadDataset(p *profile.Profile) *dataset.Dataset {
	if a.Cfg.DataDir != "" {
		return dataset.LoadDir(a.Cfg.DataDir, p.CategoryNames(), a.Logger)
	}
	fsys, err := profile.BuiltinDataFS(p.Name)
	if err != nil {
		a.Logger.Warn("no embedded data for profile", "profile", p.Name, "error", err)
		return dataset.New()
	}
	return dataset.LoadFS(fsys, ".", p.CategoryNames(), a.Logger)
}

// Client returns the completion client, or nil when assist is disabled.
func (a *App) Client() llm.Client {
	if !a.LLM.Enabled || a.LLM.APIKey == "" {
		return nil
	}
	var observer llm.Observer = llm.NoopObserver{}
	if a.LLM.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	return a.newClient(a.LLM, observer)
}

// BuildOrchestrator wires a complete engine for the given profile ref.
func (a *App) BuildOrchestrator(ref string) (*engine.Orchestrator, error) {
	p, err := a.ResolveProfile(ref)
	if err != nil {
		return nil, err
	}
	d := a.LoadDataset(p)
	return engine.NewOrchestrator(p, d, a.Client(), a.Logger), nil
}
