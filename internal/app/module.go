package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fatflowers/paylink/internal/app/api/server"
	"github.com/fatflowers/paylink/internal/app/service/catalog"
	"github.com/fatflowers/paylink/internal/app/service/checkout"
	"github.com/fatflowers/paylink/internal/app/service/notification"
	"github.com/fatflowers/paylink/internal/platform/automation"
	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	nowpayments.Module,
	automation.Module,
	fx.Provide(newStore),
	server.Module,
	catalog.Module,
	checkout.Module,
	notification.Module,
)
