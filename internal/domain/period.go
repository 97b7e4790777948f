package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType define a granularidade de um bucket de tempo.
// Snapshots de tráfego aceitam DAILY/WEEKLY/MONTHLY/YEARLY; as tendências
// financeiras trabalham com MONTHLY/QUARTERLY/YEARLY.
type PeriodType string

const (
	PeriodDaily     PeriodType = "DAILY"
	PeriodWeekly    PeriodType = "WEEKLY"
	PeriodMonthly   PeriodType = "MONTHLY"
	PeriodQuarterly PeriodType = "QUARTERLY"
	PeriodYearly    PeriodType = "YEARLY"
)

var periodTypes = map[PeriodType]struct{}{
	PeriodDaily:     {},
	PeriodWeekly:    {},
	PeriodMonthly:   {},
	PeriodQuarterly: {},
	PeriodYearly:    {},
}

func (p PeriodType) Valid() bool {
	_, ok := periodTypes[p]
	return ok
}

// ParsePeriodType converte o parâmetro de query em um PeriodType válido
func ParsePeriodType(s string) (PeriodType, error) {
	p := PeriodType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("tipo de período inválido: %q", s)
	}
	return p, nil
}

// BucketStart normaliza um instante para o início canônico do bucket que o
// contém. A normalização é idempotente: BucketStart(BucketStart(t)) == BucketStart(t).
func (p PeriodType) BucketStart(t time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case PeriodWeekly:
		// Semana começa na segunda-feira
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodQuarterly:
		quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
		return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
	case PeriodYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return t
}

// Next retorna o início do bucket seguinte. O intervalo de um bucket é sempre
// meio-aberto: [start, Next(start))
func (p PeriodType) Next(start time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return start.AddDate(0, 0, 1)
	case PeriodWeekly:
		return start.AddDate(0, 0, 7)
	case PeriodMonthly:
		return start.AddDate(0, 1, 0)
	case PeriodQuarterly:
		return start.AddDate(0, 3, 0)
	case PeriodYearly:
		return start.AddDate(1, 0, 0)
	}
	return start
}

var shortMonths = []string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Label gera o rótulo curto de exibição do bucket. O rótulo é derivado do
// início do bucket e nunca é persistido.
func (p PeriodType) Label(start time.Time) string {
	switch p {
	case PeriodDaily, PeriodWeekly:
		return start.Format("02/01/2006")
	case PeriodMonthly:
		return fmt.Sprintf("%s/%d", shortMonths[int(start.Month())-1], start.Year())
	case PeriodQuarterly:
		quarter := (int(start.Month())-1)/3 + 1
		return fmt.Sprintf("T%d/%d", quarter, start.Year())
	case PeriodYearly:
		return fmt.Sprintf("%d", start.Year())
	}
	return start.Format(time.DateOnly)
}

// LastBuckets gera os últimos count buckets canônicos terminando no bucket que
// contém ref, em ordem cronológica. A lista é sempre densa: buckets sem
// movimento também aparecem, para que gráficos nunca tenham lacunas.
func (p PeriodType) LastBuckets(ref time.Time, count int) []time.Time {
	if count < 1 {
		return nil
	}

	buckets := make([]time.Time, count)
	current := p.BucketStart(ref)
	for i := count - 1; i >= 0; i-- {
		buckets[i] = current
		current = p.Previous(current)
	}

	return buckets
}

// Previous retorna o início do bucket anterior
func (p PeriodType) Previous(start time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return start.AddDate(0, 0, -1)
	case PeriodWeekly:
		return start.AddDate(0, 0, -7)
	case PeriodMonthly:
		return start.AddDate(0, -1, 0)
	case PeriodQuarterly:
		return start.AddDate(0, -3, 0)
	case PeriodYearly:
		return start.AddDate(-1, 0, 0)
	}
	return start
}
