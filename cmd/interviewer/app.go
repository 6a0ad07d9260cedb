package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"daily-interviewer/internal/adapter/memory"
	"daily-interviewer/internal/adapter/openai"
	"daily-interviewer/internal/adapter/sqlite"
	"daily-interviewer/internal/adapter/vault"
	"daily-interviewer/internal/adapter/yandex"
	"daily-interviewer/internal/config"
	"daily-interviewer/internal/domain"
	"daily-interviewer/internal/observability"
	"daily-interviewer/internal/usecase/interview"
)

// app holds what every interview front-end needs.
type app struct {
	cfg    config.Config
	store  domain.NoteStore
	index  domain.InterviewIndex
	client interview.Client
	close  func()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return cfg, err
	}
	if vaultPath != "" {
		cfg.VaultPath = vaultPath
	}
	observability.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

// newApp wires the vault, provider and index. A dry run keeps every write
// in memory and skips the index.
func newApp(dryRun bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	vaultStore, err := vault.NewStore(cfg.VaultPath)
	if err != nil {
		return nil, err
	}

	client, err := newClient(&cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		store:  vaultStore,
		client: client,
		close:  func() {},
	}

	if dryRun {
		a.store = memory.NewOverlay(vaultStore)
		return a, nil
	}

	idx, err := openIndex(cfg)
	if err != nil {
		observability.Logger().Warn("interview index unavailable", "error", err)
		return a, nil
	}
	a.index = idx
	a.close = func() { closeIndex(idx) }

	return a, nil
}

func closeIndex(idx io.Closer) {
	if err := idx.Close(); err != nil {
		observability.Logger().Warn("closing interview index failed", "error", err)
	}
}

func (a *app) interviewer() *interview.Interviewer {
	return interview.New(a.cfg, a.client, a.store, a.index)
}

// newClient picks the chat provider. Missing credentials are reported by
// the Interviewer when an interview starts, so the default client is
// returned for them.
func newClient(cfg *config.Config) (interview.Client, error) {
	if cfg.Provider == config.ProviderYandex && cfg.HasCredentials() {
		c, err := yandex.NewClient(cfg.YandexOAuthToken, cfg.YandexFolderID)
		if err != nil {
			return nil, err
		}
		cfg.Model = c.Model()
		return c, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenRouter, config.ProviderYandex:
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrConfiguration, cfg.Provider)
	}

	return openai.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Referer, cfg.Title), nil
}

func indexPath(cfg config.Config) string {
	if filepath.IsAbs(cfg.IndexPath) {
		return cfg.IndexPath
	}
	return filepath.Join(cfg.VaultPath, cfg.IndexPath)
}

func openIndex(cfg config.Config) (*sqlite.Index, error) {
	return sqlite.New(indexPath(cfg))
}
