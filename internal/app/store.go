package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/internal/platform/store/airtable"
	"github.com/fatflowers/paylink/internal/platform/store/memory"
	"github.com/fatflowers/paylink/internal/platform/store/provider"
	"github.com/fatflowers/paylink/pkg/config"
)

// newStore picks the record store backend from config.
func newStore(cfg *config.Config, log *zap.SugaredLogger, np *nowpayments.Client) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory, "":
		log.Infow("record store selected", "backend", "memory")
		return memory.New(), nil
	case config.StoreBackendAirtable:
		log.Infow("record store selected", "backend", "airtable", "base_id", cfg.Airtable.BaseID)
		return airtable.New(cfg, log), nil
	case config.StoreBackendProvider:
		log.Infow("record store selected", "backend", "provider")
		return provider.New(np, log), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
