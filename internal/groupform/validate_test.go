package groupform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zafarich/groop-admin/models"
)

// validDraft - черновик группы, проходящий всю цепочку проверок.
func validDraft() models.GroupDraft {
	return models.GroupDraft{
		Name:             "Ingliz tili B2",
		MonthlyPrice:     intp(500000),
		CourseStartDate:  "01.09.2025",
		CourseEndDate:    "2025-12-01",
		PaymentType:      models.PaymentMonthlySameDate,
		TrialPaymentType: models.TrialFree,
		Teachers: []models.TeacherAssignment{
			{TeacherID: intp(7), IsPrimary: true},
			{TeacherID: intp(9)},
		},
		LessonSchedules: []models.LessonSchedule{
			{DayOfWeek: intp(1), StartTime: "09:00", EndTime: "10:30"},
			{DayOfWeek: intp(3), StartTime: "09:00", EndTime: "10:30"},
		},
		StudentsCanWrite:     true,
		TelegramResourceType: models.ResourcePrivateGroup,
	}
}

func TestValidateOrderedChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.GroupDraft)
		wantMsg string
	}{
		{"валидный черновик", func(d *models.GroupDraft) {}, ""},
		{"пустое имя группы", func(d *models.GroupDraft) { d.Name = "" }, "Guruh nomini kiriting"},
		{"нет оплаты", func(d *models.GroupDraft) { d.MonthlyPrice = nil }, "Oylik to'lovni kiriting"},
		{"отрицательная оплата", func(d *models.GroupDraft) { d.MonthlyPrice = intp(-1) }, "Oylik to'lovni kiriting"},
		{"нет даты начала", func(d *models.GroupDraft) { d.CourseStartDate = "" }, "Kurs boshlanish sanasini kiriting"},
		{"нет даты окончания", func(d *models.GroupDraft) { d.CourseEndDate = "" }, "Kurs tugash sanasini kiriting"},
		{"нет типа оплаты", func(d *models.GroupDraft) { d.PaymentType = "" }, "To'lov turini tanlang"},
		{"платный пробный без цены", func(d *models.GroupDraft) { d.TrialPaymentType = models.TrialPaid }, "Sinov darsi narxini kiriting"},
		{"поурочная оплата без числа уроков", func(d *models.GroupDraft) { d.PaymentType = models.PaymentLessonBased }, "Darslar sonini kiriting"},
		{"нет преподавателей", func(d *models.GroupDraft) { d.Teachers = nil }, "Kamida bitta o'qituvchi qo'shing"},
		{"невыбранный преподаватель", func(d *models.GroupDraft) { d.Teachers[1].TeacherID = nil }, "Barcha o'qituvchilarni tanlang"},
		{"нет основного преподавателя", func(d *models.GroupDraft) { d.Teachers[0].IsPrimary = false }, "Faqat bitta asosiy o'qituvchi bo'lishi kerak"},
		{"два основных преподавателя", func(d *models.GroupDraft) { d.Teachers[1].IsPrimary = true }, "Faqat bitta asosiy o'qituvchi bo'lishi kerak"},
		{"нет расписания", func(d *models.GroupDraft) { d.LessonSchedules = nil }, "Kamida bitta dars jadvalini qo'shing"},
		{"незаполненная строка расписания", func(d *models.GroupDraft) { d.LessonSchedules[1].EndTime = "" }, "Barcha dars jadvallarini to'ldiring"},
		{"повтор дня недели", func(d *models.GroupDraft) { d.LessonSchedules[1].DayOfWeek = intp(1) }, "Bir xil kunlar takrorlanmasligi kerak"},
		{"нестрогий формат времени", func(d *models.GroupDraft) { d.LessonSchedules[0].StartTime = "9:00" }, "Vaqtni HH:MM formatida kiriting (masalan: 09:00)"},
		{"время за пределами суток", func(d *models.GroupDraft) { d.LessonSchedules[0].EndTime = "24:00" }, "Vaqtni HH:MM formatida kiriting (masalan: 09:00)"},
		{"конец раньше начала", func(d *models.GroupDraft) {
			d.LessonSchedules[0].StartTime = "12:00"
			d.LessonSchedules[0].EndTime = "10:00"
		}, "Tugash vaqti boshlanish vaqtidan kechroq bo'lishi kerak"},
		{"начало равно концу", func(d *models.GroupDraft) {
			d.LessonSchedules[0].StartTime = "10:00"
			d.LessonSchedules[0].EndTime = "10:00"
		}, "Tugash vaqti boshlanish vaqtidan kechroq bo'lishi kerak"},
		{"скидка на один месяц", func(d *models.GroupDraft) {
			d.Discounts = []models.Discount{{Months: intp(1), DiscountAmount: intp(50000)}}
		}, "Chegirmalar kamida 2 oydan boshlanishi kerak"},
		{"скидка без суммы", func(d *models.GroupDraft) {
			d.Discounts = []models.Discount{{Months: intp(3)}}
		}, "Chegirmalar kamida 2 oydan boshlanishi kerak"},
		{"повтор месяцев в скидках", func(d *models.GroupDraft) {
			d.Discounts = []models.Discount{
				{Months: intp(3), DiscountAmount: intp(50000)},
				{Months: intp(3), DiscountAmount: intp(90000)},
			}
		}, "Bir xil oylar uchun chegirma takrorlanmasligi kerak"},
		{"корректные скидки", func(d *models.GroupDraft) {
			d.Discounts = []models.Discount{
				{Months: intp(3), DiscountAmount: intp(50000)},
				{Months: intp(6), DiscountAmount: intp(120000)},
			}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			assert.Equal(t, tt.wantMsg, Validate(d))
		})
	}
}

// В режиме канала групповые проверки пропускаются целиком.
func TestValidateChannelMode(t *testing.T) {
	d := models.GroupDraft{
		Name:                 "Matematika kanali",
		MonthlyPrice:         intp(300000),
		TelegramResourceType: models.ResourcePrivateChannel,
	}
	assert.Equal(t, "", Validate(d))

	// Первая проверка формулируется под канал.
	d.Name = ""
	assert.Equal(t, "Kanal nomini kiriting", Validate(d))
}
