package utils

import "time"

// ParseDate converte um parâmetro de query no formato YYYY-MM-DD.
// String vazia retorna a data zero, deixando o chamador decidir o default.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// EndOfDay leva a data para o último instante do dia, para que filtros de
// intervalo sejam inclusivos na ponta final
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
