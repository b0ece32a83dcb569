package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// JobNumberFormat описывает формат номера работы. Формат задаётся
// конфигурацией, а не зашит в бизнес-логику: префикс и число цифр
// внедряются при старте сервиса.
type JobNumberFormat struct {
	Prefix string
	Digits int
}

// DefaultJobNumberFormat — исторический формат EJB-00001.
var DefaultJobNumberFormat = JobNumberFormat{Prefix: "EJB", Digits: 5}

// pattern строит выражение для точного совпадения: префикс без учёта
// регистра, разделитель и ровно Digits цифр.
func (f JobNumberFormat) pattern() *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^(?i:%s)-(\d{%d})$`, regexp.QuoteMeta(f.Prefix), f.Digits))
}

// Valid проверяет, соответствует ли строка формату номера работы.
func (f JobNumberFormat) Valid(raw string) bool {
	return f.pattern().MatchString(strings.TrimSpace(raw))
}

// Normalize приводит номер к каноническому виду: обрезает пробелы и
// поднимает префикс в верхний регистр. Вызывать только после Valid.
func (f JobNumberFormat) Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Format собирает номер из порядкового значения: EJB-00042.
func (f JobNumberFormat) Format(seq int) string {
	return fmt.Sprintf("%s-%0*d", f.Prefix, f.Digits, seq)
}

// Next вычисляет следующий свободный номер работы по множеству уже занятых.
// Чистая функция над снимком: номер не резервируется, авторитетная проверка
// уникальности происходит при записи в хранилище. Записи, не подходящие под
// формат (чужой префикс, не та длина, нецифровой суффикс), игнорируются.
func (f JobNumberFormat) Next(existing []string) string {
	re := f.pattern()
	max := 0

	for _, jobNumber := range existing {
		match := re.FindStringSubmatch(strings.TrimSpace(jobNumber))
		if match == nil {
			continue
		}

		seq, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		if seq > max {
			max = seq
		}
	}

	return f.Format(max + 1)
}
