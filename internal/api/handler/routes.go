package handler

import (
	"net/http"

	"github.com/vfg2006/storefront-saas-api/internal/api/handler/router"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/authenticating"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/ledger"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/platform"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/stores"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/traffic"
	"github.com/vfg2006/storefront-saas-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Ledger retorna as rotas do livro-caixa. Todas exigem loja vinculada ao
// token: o TenantMiddleware resolve o store_id que os handlers usam.
func Ledger(service ledger.LedgerService) []router.Route {
	tenantScoped := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.TenantMiddleware(),
	}

	return []router.Route{
		{
			Path:        "/v1/finance/transactions",
			Method:      http.MethodPost,
			Handler:     CreateTransaction(service),
			Middlewares: tenantScoped,
		},
		{
			Path:        "/v1/finance/transactions",
			Method:      http.MethodGet,
			Handler:     ListTransactions(service),
			Middlewares: tenantScoped,
		},
		{
			Path:        "/v1/finance/transactions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTransaction(service),
			Middlewares: tenantScoped,
		},
		{
			Path:        "/v1/finance/transactions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTransaction(service),
			Middlewares: tenantScoped,
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	tenantScoped := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.TenantMiddleware(),
	}

	return []router.Route{
		{
			Path:        "/v1/finance/summary",
			Method:      http.MethodGet,
			Handler:     GetFinanceSummary(service),
			Middlewares: tenantScoped,
		},
		{
			Path:        "/v1/finance/trend",
			Method:      http.MethodGet,
			Handler:     GetRevenueTrend(service),
			Middlewares: tenantScoped,
		},
	}
}

// Traffic retorna as rotas de tráfego. O /v1/track é público: é o pixel
// das vitrines, o visitante não tem token.
func Traffic(service traffic.TrafficService) []router.Route {
	tenantScoped := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.TenantMiddleware(),
	}

	return []router.Route{
		{
			Path:    "/v1/track",
			Method:  http.MethodPost,
			Handler: TrackPageView(service),
		},
		{
			Path:        "/v1/analytics/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: tenantScoped,
		},
		{
			Path:        "/v1/analytics/snapshots/record",
			Method:      http.MethodPost,
			Handler:     RecordSnapshot(service),
			Middlewares: tenantScoped,
		},
	}
}

func Admin(platformService platform.PlatformService, storeService stores.StoreService) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/admin/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(platformService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(storeService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/stores/:id/suspend",
			Method:      http.MethodPost,
			Handler:     SuspendStore(storeService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/stores/:id/reactivate",
			Method:      http.MethodPost,
			Handler:     ReactivateStore(storeService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/stores/:id/verify",
			Method:      http.MethodPost,
			Handler:     VerifyStore(storeService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/activity",
			Method:      http.MethodGet,
			Handler:     GetRecentActivity(platformService),
			Middlewares: adminOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
