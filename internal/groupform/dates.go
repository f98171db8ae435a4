// groop-admin/internal/groupform/dates.go
package groupform

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoMillis - формат меток времени, который принимает платформа:
// ISO-8601 c миллисекундами, всегда UTC ("2025-03-09T00:00:00.000Z").
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var (
	reDotDate   = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	reISODate   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTimestamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)
)

// fallbackLayouts - запасные варианты разбора для дат, не попавших ни под один
// из обязательных форматов.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ConvertDateToISO приводит пользовательскую дату к виду isoMillis.
// Принимаются DD.MM.YYYY (день-месяц-год, полночь UTC), YYYY-MM-DD (полночь
// UTC) и готовые ISO-метки (возвращаются без изменений). Всё остальное
// пробуем разобрать запасными форматами; при неудаче строка возвращается
// как есть - мягкий отказ, решение об отклонении остаётся за платформой.
// Пустой ввод даёт пустую строку.
func ConvertDateToISO(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	if reDotDate.MatchString(s) {
		parts := strings.Split(s, ".")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(isoMillis)
	}

	if reISODate.MatchString(s) {
		parts := strings.Split(s, "-")
		year, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		day, _ := strconv.Atoi(parts[2])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(isoMillis)
	}

	if reTimestamp.MatchString(s) {
		return s
	}

	if t, ok := parseFallback(s); ok {
		return t.UTC().Format(isoMillis)
	}
	return s
}

// parseCourseDate разбирает дату начала/окончания курса для расчёта
// длительности. DD.MM.YYYY имеет приоритет, остальное идёт через
// запасные форматы.
func parseCourseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if reDotDate.MatchString(s) {
		parts := strings.Split(s, ".")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	return parseFallback(s)
}

func parseFallback(s string) (time.Time, bool) {
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
