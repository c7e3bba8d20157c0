// Package pricing считает стоимость абонемента или аренды шкафчика
// за выбранную длительность и строит биллинговые периоды.
//
// Скидка применяется одной ставкой ко всей сумме, а не помесячно:
// 1–5 месяцев — без скидки, 6–11 — 5%, ровно 12 — 10%.
// Ставка зависит только от длительности текущей операции, накопленная
// история продлений на неё не влияет.
package pricing

import (
	"errors"
	"time"

	"github.com/avdeevmax/gym-ledger/internal/models"
)

var (
	// ErrInvalidDuration — длительность вне диапазона [1, 12] месяцев.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidFee — отрицательная базовая месячная цена.
	ErrInvalidFee = errors.New("invalid fee")
)

// Границы скидочной сетки.
const (
	MinMonths = 1
	MaxMonths = 12

	halfYearMonths = 6
)

// DiscountRate возвращает ставку скидки для длительности в месяцах.
func DiscountRate(months int) float64 {
	switch {
	case months == MaxMonths:
		return 0.10
	case months >= halfYearMonths:
		return 0.05
	default:
		return 0
	}
}

// Quote считает итоговую стоимость за months месяцев по базовой месячной
// цене. Итог округляется до целой денежной единицы по правилу half-up.
// Расчёт целочисленный, чтобы исключить накопление ошибки плавающей точки.
func Quote(baseMonthlyFee int64, months int) (models.PriceQuote, error) {
	if months < MinMonths || months > MaxMonths {
		return models.PriceQuote{}, ErrInvalidDuration
	}
	if baseMonthlyFee < 0 {
		return models.PriceQuote{}, ErrInvalidFee
	}

	gross := baseMonthlyFee * int64(months)
	var total int64
	switch {
	case months == MaxMonths:
		total = (gross*9 + 5) / 10 // gross * 0.90, half-up
	case months >= halfYearMonths:
		total = (gross*19 + 10) / 20 // gross * 0.95, half-up
	default:
		total = gross
	}

	return models.PriceQuote{
		Months:         months,
		BaseMonthlyFee: baseMonthlyFee,
		DiscountRate:   DiscountRate(months),
		TotalPrice:     total,
	}, nil
}

// Extend строит период на months месяцев поверх текущего.
// Активный период продлевается встык с его датой окончания, без разрыва
// и без наложения. Отсутствующий или уже истёкший к today период
// начинается заново с today.
func Extend(current *models.BillingPeriod, months int, today time.Time) (models.BillingPeriod, error) {
	if months < MinMonths || months > MaxMonths {
		return models.BillingPeriod{}, ErrInvalidDuration
	}

	start := today
	if current != nil && current.EndDate.After(today) {
		start = current.EndDate
	}
	return models.BillingPeriod{
		StartDate: start,
		EndDate:   AddMonths(start, months),
		Months:    months,
	}, nil
}

// AddMonths сдвигает дату на months календарных месяцев, сохраняя день
// месяца. Если в целевом месяце такого дня нет, берётся его последний
// день (31 января + 1 месяц = 28/29 февраля), в отличие от time.AddDate,
// который переносит переполнение на следующий месяц.
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), time.Month(int(t.Month())+months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
