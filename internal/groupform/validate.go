// groop-admin/internal/groupform/validate.go
package groupform

import (
	"regexp"

	"github.com/zafarich/groop-admin/models"
)

// timeRegex - строгий 24-часовой HH:MM. Формат фиксированной ширины с
// ведущими нулями, поэтому "startTime < endTime" корректно проверяется
// лексикографическим сравнением строк.
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Validate прогоняет упорядоченную цепочку проверок и возвращает текст первой
// нарушенной - пустая строка означает, что черновик готов к отправке.
// Ошибки не накапливаются: пользователь видит по одной. В режиме канала все
// групповые проверки пропускаются.
func Validate(d models.GroupDraft) string {
	isChannel := d.IsChannel()

	if d.Name == "" {
		if isChannel {
			return "Kanal nomini kiriting"
		}
		return "Guruh nomini kiriting"
	}

	if d.MonthlyPrice == nil || *d.MonthlyPrice < 0 {
		return "Oylik to'lovni kiriting"
	}

	if !isChannel {
		if d.CourseStartDate == "" {
			return "Kurs boshlanish sanasini kiriting"
		}
		if d.CourseEndDate == "" {
			return "Kurs tugash sanasini kiriting"
		}
		if d.PaymentType == "" {
			return "To'lov turini tanlang"
		}

		if d.TrialPaymentType == models.TrialPaid && (d.TrialPrice == nil || *d.TrialPrice < 0) {
			return "Sinov darsi narxini kiriting"
		}

		if d.PaymentType == models.PaymentLessonBased &&
			(d.LessonsPerPaymentPeriod == nil || *d.LessonsPerPaymentPeriod < 1) {
			return "Darslar sonini kiriting"
		}

		if len(d.Teachers) == 0 {
			return "Kamida bitta o'qituvchi qo'shing"
		}
		primaryCount := 0
		for _, t := range d.Teachers {
			if t.TeacherID == nil {
				return "Barcha o'qituvchilarni tanlang"
			}
			if t.IsPrimary {
				primaryCount++
			}
		}
		if primaryCount != 1 {
			return "Faqat bitta asosiy o'qituvchi bo'lishi kerak"
		}

		if len(d.LessonSchedules) == 0 {
			return "Kamida bitta dars jadvalini qo'shing"
		}
		seenDays := make(map[int]bool, len(d.LessonSchedules))
		for _, s := range d.LessonSchedules {
			if s.DayOfWeek == nil || s.StartTime == "" || s.EndTime == "" {
				return "Barcha dars jadvallarini to'ldiring"
			}
		}
		for _, s := range d.LessonSchedules {
			if seenDays[*s.DayOfWeek] {
				return "Bir xil kunlar takrorlanmasligi kerak"
			}
			seenDays[*s.DayOfWeek] = true
		}
		for _, s := range d.LessonSchedules {
			if !timeRegex.MatchString(s.StartTime) || !timeRegex.MatchString(s.EndTime) {
				return "Vaqtni HH:MM formatida kiriting (masalan: 09:00)"
			}
			if s.StartTime >= s.EndTime {
				return "Tugash vaqti boshlanish vaqtidan kechroq bo'lishi kerak"
			}
		}

		if len(d.Discounts) > 0 {
			seenMonths := make(map[int]bool, len(d.Discounts))
			for _, disc := range d.Discounts {
				if disc.Months == nil || *disc.Months < 2 || disc.DiscountAmount == nil {
					return "Chegirmalar kamida 2 oydan boshlanishi kerak"
				}
			}
			for _, disc := range d.Discounts {
				if seenMonths[*disc.Months] {
					return "Bir xil oylar uchun chegirma takrorlanmasligi kerak"
				}
				seenMonths[*disc.Months] = true
			}
		}
	}

	return ""
}
