package di

import (
	"go.uber.org/fx"

	"github.com/curatebox/boxops/internal/app"
	"github.com/curatebox/boxops/internal/config"
	"github.com/curatebox/boxops/internal/logger"
	"github.com/curatebox/boxops/internal/server/http/handlers"
	"github.com/curatebox/boxops/internal/server/http/router"
	"github.com/curatebox/boxops/internal/session"
	"github.com/curatebox/boxops/internal/storage/postgres"
	"github.com/curatebox/boxops/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		session.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.DashboardFacade) handlers.DashboardFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
