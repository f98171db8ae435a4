// groop-admin/internal/groupform/derive.go
package groupform

import (
	"math"

	"github.com/zafarich/groop-admin/models"
)

// Производные величины формы. Все функции - чистые проекции черновика,
// ничего в него не записывают и пересчитываются при каждом чтении.

// CourseDurationMonths - длительность курса в месяцах с точностью до одной
// десятой: дни между датами, делённые на 30. Неразборчивые даты дают 0.
func CourseDurationMonths(d models.GroupDraft) float64 {
	if d.CourseStartDate == "" || d.CourseEndDate == "" {
		return 0
	}
	start, okStart := parseCourseDate(d.CourseStartDate)
	end, okEnd := parseCourseDate(d.CourseEndDate)
	if !okStart || !okEnd {
		return 0
	}
	days := end.Sub(start).Hours() / 24
	return math.Round(days/30*10) / 10
}

// TotalMonthlyPayment - сколько студент заплатит за весь курс при помесячной
// оплате. Неполный месяц всегда оплачивается как целый, поэтому длительность
// округляется вверх.
func TotalMonthlyPayment(d models.GroupDraft) int {
	months := CourseDurationMonths(d)
	if d.MonthlyPrice == nil || *d.MonthlyPrice == 0 || months == 0 {
		return 0
	}
	return int(math.Ceil(months)) * *d.MonthlyPrice
}

// WholePeriodSavings - экономия при оплате всего курса сразу.
func WholePeriodSavings(d models.GroupDraft) int {
	total := TotalMonthlyPayment(d)
	if d.WholePeriodPrice == nil || *d.WholePeriodPrice == 0 || total == 0 {
		return 0
	}
	return total - *d.WholePeriodPrice
}

// WholePeriodSavingsPercent - та же экономия в процентах от помесячной суммы.
func WholePeriodSavingsPercent(d models.GroupDraft) int {
	savings := WholePeriodSavings(d)
	total := TotalMonthlyPayment(d)
	if savings == 0 || total == 0 {
		return 0
	}
	return int(math.Round(float64(savings) / float64(total) * 100))
}

// DiscountExample - готовый к показу пример расчёта скидки.
type DiscountExample struct {
	MonthlyPrice      string `json:"monthlyPrice"`
	Months            int    `json:"months"`
	TotalOriginal     string `json:"totalOriginal"`
	DiscountAmount    string `json:"discountAmount"`
	TotalWithDiscount string `json:"totalWithDiscount"`
}

// DiscountExampleFor считает пример для одной скидки. Возвращает nil, пока
// не заполнены цена за месяц, число месяцев и размер скидки.
func DiscountExampleFor(d models.GroupDraft, disc models.Discount) *DiscountExample {
	if d.MonthlyPrice == nil || *d.MonthlyPrice == 0 || disc.Months == nil || *disc.Months == 0 ||
		disc.DiscountAmount == nil || *disc.DiscountAmount == 0 {
		return nil
	}
	totalOriginal := *d.MonthlyPrice * *disc.Months
	totalWithDiscount := totalOriginal - *disc.DiscountAmount
	return &DiscountExample{
		MonthlyPrice:      PrettyMoney(*d.MonthlyPrice),
		Months:            *disc.Months,
		TotalOriginal:     PrettyMoney(totalOriginal),
		DiscountAmount:    PrettyMoney(*disc.DiscountAmount),
		TotalWithDiscount: PrettyMoney(totalWithDiscount),
	}
}

// Summary объединяет все производные значения для ответа API.
type Summary struct {
	IsChannel                 bool               `json:"isChannel"`
	CourseDurationMonths      float64            `json:"courseDurationMonths"`
	TotalMonthlyPayment       int                `json:"totalMonthlyPayment"`
	WholePeriodSavings        int                `json:"wholePeriodSavings"`
	WholePeriodSavingsPercent int                `json:"wholePeriodSavingsPercent"`
	PaymentTypeDescription    string             `json:"paymentTypeDescription"`
	DiscountExamples          []*DiscountExample `json:"discountExamples"`
}

// Summarize считает производные значения по снимку черновика.
// Список примеров скидок параллелен списку скидок черновика.
func Summarize(d models.GroupDraft) Summary {
	examples := make([]*DiscountExample, len(d.Discounts))
	for i, disc := range d.Discounts {
		examples[i] = DiscountExampleFor(d, disc)
	}
	return Summary{
		IsChannel:                 d.IsChannel(),
		CourseDurationMonths:      CourseDurationMonths(d),
		TotalMonthlyPayment:       TotalMonthlyPayment(d),
		WholePeriodSavings:        WholePeriodSavings(d),
		WholePeriodSavingsPercent: WholePeriodSavingsPercent(d),
		PaymentTypeDescription:    PaymentTypeDescription(d.PaymentType),
		DiscountExamples:          examples,
	}
}
