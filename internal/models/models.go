// Package models содержит доменные структуры зала: биллинговые периоды,
// записи журнала оплат, ресурсы (шкафчики и абонементы) и справочные данные,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Действия, допустимые для записи журнала.
const (
	ActionPayment      = "payment"
	ActionExtension    = "extension"
	ActionCancellation = "cancellation"
	ActionRefund       = "refund"
)

// Способы оплаты.
const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
)

// Статусы ресурса.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusExpired   = "expired"
)

// Виды ресурсов.
const (
	KindLocker     = "locker"
	KindMembership = "membership"
)

// BillingPeriod описывает один оплаченный интервал пользования ресурсом.
// EndDate всегда равен StartDate, сдвинутому на Months календарных месяцев
// (день месяца сохраняется, при переполнении прижимается к последнему дню).
// Период неизменяем: продление создаёт новый период, привязанный к EndDate
// предыдущего, а не мутирует старый.
type BillingPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Months    int       `json:"months"`
}

// PriceQuote — результат расчёта стоимости за выбранную длительность.
// Существует только в момент расчёта, в журнал попадает лишь TotalPrice.
type PriceQuote struct {
	Months         int     `json:"months"`
	BaseMonthlyFee int64   `json:"base_monthly_fee"`
	DiscountRate   float64 `json:"discount_rate"`
	TotalPrice     int64   `json:"total_price"`
}

// LedgerEntry — запись журнала оплат и операций по ресурсу.
// Журнал только пополняется: исправления оформляются новыми записями
// с действием "refund" или "cancellation", записи никогда не редактируются.
type LedgerEntry struct {
	ID         string        `json:"id"`
	MemberID   string        `json:"member_id"`
	ResourceID string        `json:"resource_id"`
	Action     string        `json:"action"`
	Amount     int64         `json:"amount"`
	Period     BillingPeriod `json:"period"`
	Method     string        `json:"method"`
	CreatedAt  time.Time     `json:"created_at"`
	Notes      string        `json:"notes,omitempty"`
}

// Resource — шкафчик или слот абонемента, который может быть занят
// на один BillingPeriod. HolderID хранит клиента, занимающего ресурс,
// и пуст, когда ресурс свободен.
type Resource struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	Number        string         `json:"number"`
	Status        string         `json:"status"`
	HolderID      string         `json:"holder_id,omitempty"`
	CurrentPeriod *BillingPeriod `json:"current_period,omitempty"`
}

// EffectiveStatus возвращает статус ресурса с учётом истечения периода.
// Истечение вычисляется лениво при чтении: хранимый статус "occupied"
// превращается в "expired", как только конец периода не позже now.
func (r *Resource) EffectiveStatus(now time.Time) string {
	if r.Status == StatusOccupied && r.CurrentPeriod != nil && !r.CurrentPeriod.EndDate.After(now) {
		return StatusExpired
	}
	return r.Status
}

// MembershipType — справочный тип абонемента с базовой месячной ценой.
type MembershipType struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MonthlyFee int64  `json:"monthly_fee"`
}

// StaffMember — справочная запись о сотруднике зала.
type StaffMember struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ExpiryNotice — уведомление о скором окончании периода ресурса,
// публикуется планировщиком в очередь нотификаций.
type ExpiryNotice struct {
	MemberID   string    `json:"member_id"`
	ResourceID string    `json:"resource_id"`
	Kind       string    `json:"kind"`
	Number     string    `json:"number"`
	EndDate    time.Time `json:"end_date"`
}

// DummyLedgerEntry используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в LedgerEntry. Дата приходит строкой
// в формате 2006-01-02, чтобы её можно было валидировать и парсить вручную.
type DummyLedgerEntry struct {
	MemberID   string `json:"member_id" validate:"required"`                                          // Идентификатор клиента
	ResourceID string `json:"resource_id" validate:"required"`                                        // Идентификатор ресурса
	Action     string `json:"action" validate:"required,oneof=payment extension cancellation refund"` // Действие
	Amount     int64  `json:"amount"`                                                                 // Сумма операции
	Months     int    `json:"months,omitempty"`                                                       // Длительность в месяцах (для payment/extension)
	Method     string `json:"method" validate:"required,oneof=cash card transfer"`                    // Способ оплаты
	StartDate  string `json:"start_date,omitempty"`                                                   // Дата начала, пусто = сегодня
	Notes      string `json:"notes,omitempty"`                                                        // Комментарий оператора
}

// DummyQuote используется для приёма параметров расчёта стоимости.
type DummyQuote struct {
	BaseMonthlyFee int64 `json:"base_monthly_fee" validate:"gte=0"` // Базовая месячная цена
	Months         int   `json:"months" validate:"required"`        // Длительность в месяцах
}
