package utils

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate valida datas AAAA-MM-DD; string vazia devolve o valor zero
func ParseDate(value string) (time.Time, error) {
	return parseOptional(value, DateLayout)
}

// ParseMonth valida meses AAAA-MM; string vazia devolve o valor zero
func ParseMonth(value string) (time.Time, error) {
	return parseOptional(value, MonthLayout)
}

func parseOptional(value, layout string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, value)
}
