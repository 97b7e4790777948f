package platform

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

const (
	trendMonths         = 12
	recentPaymentsLimit = 10
	recentActivityLimit = 20
)

var ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

// PlatformService monta a visão administrativa agregada da plataforma.
// Tudo aqui atravessa tenants de propósito: os números são agregados e as
// projeções expostas nunca carregam linhas do livro-caixa de uma loja.
type PlatformService interface {
	DashboardStats() (*domain.PlatformDashboard, error)
	RecentActivity(limit int) ([]*domain.AdminActivity, error)
}

type Service struct {
	subscriptionRepo repository.SubscriptionRepository
	orderRepo        repository.OrderRepository
	activityRepo     repository.AdminActivityRepository
}

func NewService(
	subscriptionRepo repository.SubscriptionRepository,
	orderRepo repository.OrderRepository,
	activityRepo repository.AdminActivityRepository,
) PlatformService {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		orderRepo:        orderRepo,
		activityRepo:     activityRepo,
	}
}

// DashboardStats agrega os painéis do dashboard administrativo. As consultas
// são independentes entre si e rodam em paralelo; a primeira falha aborta a
// resposta inteira, painel parcial não é servido.
func (s *Service) DashboardStats() (*domain.PlatformDashboard, error) {
	var (
		wg   sync.WaitGroup
		errs [6]error

		statusCount    *domain.SubscriptionStatusCount
		planTotals     []*domain.PlanTotal
		totalRevenue   float64
		trend          []*domain.PlatformTrendBucket
		recentPayments []*domain.RecentPayment
		recentActivity []*domain.AdminActivity
	)

	wg.Add(6)

	go func() {
		defer wg.Done()
		statusCount, errs[0] = s.subscriptionRepo.CountByStatus()
	}()

	go func() {
		defer wg.Done()
		planTotals, errs[1] = s.subscriptionRepo.PlanTotals()
	}()

	go func() {
		defer wg.Done()
		totalRevenue, errs[2] = s.totalRevenue()
	}()

	go func() {
		defer wg.Done()
		trend, errs[3] = s.revenueTrend(time.Now())
	}()

	go func() {
		defer wg.Done()
		recentPayments, errs[4] = s.subscriptionRepo.RecentPayments(recentPaymentsLimit)
	}()

	go func() {
		defer wg.Done()
		recentActivity, errs[5] = s.activityRepo.ListRecent(recentActivityLimit)
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar dashboard da plataforma")
			return nil, err
		}
	}

	return &domain.PlatformDashboard{
		Subscriptions:  statusCount,
		ConversionRate: domain.ConversionRate(statusCount.Active, statusCount.Trial),
		Plans:          domain.BuildPlanDistribution(planTotals),
		TotalRevenue:   totalRevenue,
		RevenueGrowth:  trendGrowth(trend),
		RevenueTrend:   trend,
		RecentPayments: recentPayments,
		RecentActivity: recentActivity,
	}, nil
}

// RecentActivity retorna as últimas entradas da trilha de auditoria
func (s *Service) RecentActivity(limit int) ([]*domain.AdminActivity, error) {
	if limit < 1 || limit > 100 {
		limit = recentActivityLimit
	}

	activity, err := s.activityRepo.ListRecent(limit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar atividade administrativa")
		return nil, err
	}

	return activity, nil
}

// totalRevenue soma os dois fluxos de receita da plataforma: pedidos pagos
// de todas as lojas (desde sempre) e o valor das assinaturas ativas. Os
// fluxos são disjuntos, então a soma não conta nada em dobro.
func (s *Service) totalRevenue() (float64, error) {
	ordersTotal, err := s.orderRepo.SumPaidAllStores(time.Time{}, time.Now())
	if err != nil {
		return 0, err
	}

	subscriptionsTotal, err := s.subscriptionRepo.SumActivePrices()
	if err != nil {
		return 0, err
	}

	return utils.RoundWithTwoDecimalPlace(ordersTotal + subscriptionsTotal), nil
}

// revenueTrend monta a série mensal densa dos últimos doze meses. Buckets
// sem movimento entram zerados, o consumidor do gráfico nunca interpola.
func (s *Service) revenueTrend(ref time.Time) ([]*domain.PlatformTrendBucket, error) {
	starts := domain.PeriodMonthly.LastBuckets(ref, trendMonths)
	buckets := make([]*domain.PlatformTrendBucket, len(starts))

	for i, start := range starts {
		end := domain.PeriodMonthly.Next(start)

		orderRevenue, err := s.orderRepo.SumPaidAllStores(start, end)
		if err != nil {
			return nil, err
		}

		subscriptionRevenue, err := s.subscriptionRepo.SumActivePriceStartedInRange(start, end)
		if err != nil {
			return nil, err
		}

		buckets[i] = &domain.PlatformTrendBucket{
			PeriodStart:         start,
			Label:               domain.PeriodMonthly.Label(start),
			OrderRevenue:        orderRevenue,
			SubscriptionRevenue: subscriptionRevenue,
			Total:               utils.RoundWithTwoDecimalPlace(orderRevenue + subscriptionRevenue),
		}
	}

	return buckets, nil
}

func trendGrowth(buckets []*domain.PlatformTrendBucket) float64 {
	if len(buckets) < 2 {
		return 0
	}

	current := buckets[len(buckets)-1]
	previous := buckets[len(buckets)-2]

	return domain.GrowthRate(current.Total, previous.Total)
}
