package timezone

import "time"

const DefaultTimezone = "America/Argentina/Buenos_Aires"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock devolve o "agora" usado por todo o núcleo.
// Testes injetam um relógio fixo.
type Clock func() time.Time

// ClockIn cria um relógio no fuso informado
func ClockIn(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today no formato YYYY-MM-DD
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Month no formato YYYY-MM
func Month(now time.Time) string {
	return now.Format(MonthLayout)
}

func Stamp(now time.Time) string {
	return now.Format(time.RFC3339)
}

// Week devolve o primeiro (domingo) e o último (sábado) dia da semana de now.
func Week(now time.Time) (start, end string) {
	first := now.AddDate(0, 0, -int(now.Weekday()))
	return Today(first), Today(first.AddDate(0, 0, 6))
}
