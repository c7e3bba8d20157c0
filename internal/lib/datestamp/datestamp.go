// Package datestamp конвертирует календарные даты вида 2006-01-02
// в целочисленные unix-метки и обратно. Обе стороны работают в локальной
// таймзоне процесса, поэтому дата, прогнанная через ToTimestamp и
// FromTimestamp, совпадает с исходной при любом смещении от UTC.
package datestamp

import "time"

// Layout — формат календарной даты, принятый во всём приложении.
const Layout = "2006-01-02"

// ToTimestamp парсит дату вида 2006-01-02 в unix-метку (секунды) начала
// этих суток в локальной таймзоне. Пустая или синтаксически некорректная
// строка даёт nil, ошибки не возвращаются.
func ToTimestamp(date string) *int64 {
	if date == "" {
		return nil
	}
	t, err := time.ParseInLocation(Layout, date, time.Local)
	if err != nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

// TimeToTimestamp переводит момент времени в unix-метку.
// Нулевое время даёт nil.
func TimeToTimestamp(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ts := t.Unix()
	return &ts
}

// FromTimestamp возвращает локальную календарную дату вида 2006-01-02
// для unix-метки. nil на входе даёт nil на выходе.
func FromTimestamp(ts *int64) *string {
	if ts == nil {
		return nil
	}
	date := time.Unix(*ts, 0).In(time.Local).Format(Layout)
	return &date
}
