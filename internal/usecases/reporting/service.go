package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

const (
	maxTrendBuckets = 60
)

// trendPeriodTypes são as granularidades aceitas pelas tendências
// financeiras. Snapshots de tráfego têm o próprio conjunto (DAILY/WEEKLY/...).
var trendPeriodTypes = map[domain.PeriodType]struct{}{
	domain.PeriodMonthly:   {},
	domain.PeriodQuarterly: {},
	domain.PeriodYearly:    {},
}

// ReportingService é o motor de reconciliação de receita de um tenant:
// combina livro-caixa, pedidos pagos e assinaturas em resumos e séries
// temporais. Todas as consultas carregam o storeID resolvido pelo contexto.
type ReportingService interface {
	Summary(storeID string, filters *domain.ReportFilters) (*domain.FinanceSummary, error)
	Trend(storeID string, bucketCount int, periodType domain.PeriodType) (*domain.RevenueTrend, error)
}

type Service struct {
	ledgerRepo       repository.LedgerRepository
	orderRepo        repository.OrderRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewService(
	ledgerRepo repository.LedgerRepository,
	orderRepo repository.OrderRepository,
	subscriptionRepo repository.SubscriptionRepository,
) ReportingService {
	return &Service{
		ledgerRepo:       ledgerRepo,
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Summary calcula o resumo financeiro de uma loja no intervalo informado.
// Sem intervalo, o padrão é o mês corrente.
func (s *Service) Summary(storeID string, filters *domain.ReportFilters) (*domain.FinanceSummary, error) {
	start, end, err := resolveRange(filters)
	if err != nil {
		return nil, err
	}

	var (
		income     float64
		expense    float64
		categories []*domain.CategoryTotal

		incomeErr   error
		expenseErr  error
		categoryErr error
	)

	// As três consultas são independentes entre si e podem ser emitidas em
	// paralelo; o resultado só é montado depois que todas terminam
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		income, incomeErr = s.ledgerRepo.SumByType(storeID, domain.TransactionIncome, start, end)
	}()

	go func() {
		defer wg.Done()
		expense, expenseErr = s.ledgerRepo.SumByType(storeID, domain.TransactionExpense, start, end)
	}()

	go func() {
		defer wg.Done()
		categories, categoryErr = s.ledgerRepo.CategoryTotals(storeID, start, end)
	}()

	wg.Wait()

	for _, err := range []error{incomeErr, expenseErr, categoryErr} {
		if err != nil {
			logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao calcular resumo financeiro")
			return nil, err
		}
	}

	return &domain.FinanceSummary{
		Income:    utils.RoundWithTwoDecimalPlace(income),
		Expense:   utils.RoundWithTwoDecimalPlace(expense),
		Net:       utils.RoundWithTwoDecimalPlace(income - expense),
		Breakdown: domain.BuildCategoryBreakdown(categories),
		Filters:   filters,
	}, nil
}

// Trend monta a série temporal densa dos últimos bucketCount períodos,
// terminando no período corrente. Buckets sem movimento aparecem zerados
// para que gráficos nunca tenham lacunas.
func (s *Service) Trend(storeID string, bucketCount int, periodType domain.PeriodType) (*domain.RevenueTrend, error) {
	if bucketCount < 1 || bucketCount > maxTrendBuckets {
		return nil, ErrInvalidBucketCount
	}

	if _, ok := trendPeriodTypes[periodType]; !ok {
		return nil, ErrInvalidPeriodType
	}

	starts := periodType.LastBuckets(time.Now(), bucketCount)
	buckets := make([]*domain.TrendBucket, len(starts))
	errs := make([]error, len(starts))

	// Cada bucket é uma consulta independente sobre o intervalo meio-aberto
	// [início, próximo início); não há dependência de ordem entre eles
	wg := sync.WaitGroup{}
	for i, bucketStart := range starts {
		wg.Add(1)
		go func(i int, bucketStart time.Time) {
			defer wg.Done()
			buckets[i], errs[i] = s.collectBucket(storeID, periodType, bucketStart)
		}(i, bucketStart)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao calcular tendência de receita")
			return nil, err
		}
	}

	return &domain.RevenueTrend{
		PeriodType: periodType,
		Buckets:    buckets,
		Growth:     trendGrowth(buckets),
	}, nil
}

// collectBucket soma as fontes de receita de um único bucket. As fontes são
// sinais independentes: lançamentos manuais de entrada e receita de pedidos
// podem se sobrepor, então ficam em séries separadas em vez de mescladas.
func (s *Service) collectBucket(storeID string, periodType domain.PeriodType, bucketStart time.Time) (*domain.TrendBucket, error) {
	bucketEnd := periodType.Next(bucketStart)

	income, err := s.ledgerRepo.SumByType(storeID, domain.TransactionIncome, bucketStart, bucketEnd)
	if err != nil {
		return nil, err
	}

	expense, err := s.ledgerRepo.SumByType(storeID, domain.TransactionExpense, bucketStart, bucketEnd)
	if err != nil {
		return nil, err
	}

	orderRevenue, err := s.orderRepo.SumPaidByStore(storeID, bucketStart, bucketEnd)
	if err != nil {
		return nil, err
	}

	subscriptionRevenue, err := s.subscriptionRepo.SumActivePriceByStore(storeID, bucketStart, bucketEnd)
	if err != nil {
		return nil, err
	}

	return &domain.TrendBucket{
		PeriodStart:         bucketStart,
		Label:               periodType.Label(bucketStart),
		LedgerIncome:        utils.RoundWithTwoDecimalPlace(income),
		LedgerExpense:       utils.RoundWithTwoDecimalPlace(expense),
		OrderRevenue:        utils.RoundWithTwoDecimalPlace(orderRevenue),
		SubscriptionRevenue: utils.RoundWithTwoDecimalPlace(subscriptionRevenue),
		Net:                 utils.RoundWithTwoDecimalPlace(income - expense),
	}, nil
}

// trendGrowth compara a receita total dos dois últimos buckets pela política
// padrão de crescimento
func trendGrowth(buckets []*domain.TrendBucket) float64 {
	if len(buckets) < 2 {
		return 0
	}

	last := buckets[len(buckets)-1]
	previous := buckets[len(buckets)-2]

	return domain.GrowthRate(bucketRevenue(last), bucketRevenue(previous))
}

func bucketRevenue(bucket *domain.TrendBucket) float64 {
	return bucket.LedgerIncome + bucket.OrderRevenue + bucket.SubscriptionRevenue
}

// resolveRange converte os filtros inclusivos do chamador no intervalo
// meio-aberto usado pelos repositórios. Sem filtros, o padrão é o mês
// corrente.
func resolveRange(filters *domain.ReportFilters) (time.Time, time.Time, error) {
	now := time.Now()

	start := domain.PeriodMonthly.BucketStart(now)
	end := domain.PeriodMonthly.Next(start)

	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = *filters.StartDate
	}

	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		if filters.StartDate != nil && filters.StartDate.After(*filters.EndDate) {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		// A ponta final é inclusiva para o chamador: o dia informado
		// entra inteiro no intervalo
		end = domain.PeriodDaily.Next(domain.PeriodDaily.BucketStart(*filters.EndDate))
	}

	return start, end, nil
}
