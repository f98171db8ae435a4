// groop-admin/internal/groupform/submit.go
package groupform

import (
	"context"
	"errors"

	"github.com/zafarich/groop-admin/models"
)

// GroupCreator - то, что умеет создать группу на платформе.
// Реализуется platform.Client.
type GroupCreator interface {
	CreateGroup(ctx context.Context, token string, payload models.CreateGroupRequest) (*models.SetupInstructions, error)
}

// BuildPayload собирает тело POST /v1/groups из валидного черновика.
// Базовые поля присутствуют всегда; в режиме канала studentsCanWrite
// принудительно false, а групповые поля не попадают в запрос вовсе.
// Даты проходят нормализацию в ISO-8601.
func BuildPayload(d models.GroupDraft) models.CreateGroupRequest {
	isChannel := d.IsChannel()

	payload := models.CreateGroupRequest{
		Name:                 d.Name,
		Description:          d.Description,
		TelegramResourceType: d.TelegramResourceType,
	}
	if d.MonthlyPrice != nil {
		payload.MonthlyPrice = *d.MonthlyPrice
	}
	if !isChannel {
		payload.StudentsCanWrite = d.StudentsCanWrite
	}

	if isChannel {
		return payload
	}

	if d.WholePeriodPrice != nil && *d.WholePeriodPrice != 0 {
		payload.WholePeriodPrice = d.WholePeriodPrice
	}
	payload.CourseStartDate = ConvertDateToISO(d.CourseStartDate)
	payload.CourseEndDate = ConvertDateToISO(d.CourseEndDate)
	payload.PaymentType = d.PaymentType
	payload.TrialPaymentType = d.TrialPaymentType
	if d.TrialPaymentType == models.TrialPaid {
		payload.TrialPrice = d.TrialPrice
	}
	if d.PaymentType == models.PaymentLessonBased {
		payload.LessonsPerPaymentPeriod = d.LessonsPerPaymentPeriod
	}

	payload.Teachers = make([]models.TeacherPayload, 0, len(d.Teachers))
	for _, t := range d.Teachers {
		tp := models.TeacherPayload{IsPrimary: t.IsPrimary}
		if t.TeacherID != nil {
			tp.TeacherID = *t.TeacherID
		}
		payload.Teachers = append(payload.Teachers, tp)
	}

	payload.LessonSchedules = make([]models.SchedulePayload, 0, len(d.LessonSchedules))
	for _, s := range d.LessonSchedules {
		sp := models.SchedulePayload{StartTime: s.StartTime, EndTime: s.EndTime}
		if s.DayOfWeek != nil {
			sp.DayOfWeek = *s.DayOfWeek
		}
		payload.LessonSchedules = append(payload.LessonSchedules, sp)
	}

	// Пустой список скидок в запрос не кладём.
	if len(d.Discounts) > 0 {
		payload.Discounts = make([]models.DiscountPayload, 0, len(d.Discounts))
		for _, disc := range d.Discounts {
			dp := models.DiscountPayload{}
			if disc.Months != nil {
				dp.Months = *disc.Months
			}
			if disc.DiscountAmount != nil {
				dp.DiscountAmount = *disc.DiscountAmount
			}
			payload.Discounts = append(payload.Discounts, dp)
		}
	}

	return payload
}

// Submit - точка отправки формы. Сначала валидация (при провале запрос не
// уходит), затем единственный сетевой вызов. Повторная отправка, пока первая
// в пути, отклоняется. Ошибки сети и платформы не пробрасываются наружу:
// они оседают в errorMessage, а результат сводится к булеву успеху.
// При успехе заполняются инструкции подключения Telegram; если платформа не
// вернула тип ресурса, берётся локальный.
func (f *Form) Submit(ctx context.Context, api GroupCreator, token string) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	if msg := Validate(f.draft); msg != "" {
		f.errorMessage = msg
		f.mu.Unlock()
		return false
	}
	f.errorMessage = ""
	f.submitting = true
	payload := BuildPayload(f.draft)
	localType := f.draft.TelegramResourceType
	f.mu.Unlock()

	setup, err := api.CreateGroup(ctx, token, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		var ue interface{ UserMessage() string }
		if errors.As(err, &ue) && ue.UserMessage() != "" {
			f.errorMessage = ue.UserMessage()
		} else {
			f.errorMessage = "Guruh yaratishda xatolik yuz berdi"
		}
		return false
	}

	handoff := models.SetupInstructions{}
	if setup != nil {
		handoff = *setup
	}
	if handoff.TelegramResourceType == "" {
		handoff.TelegramResourceType = localType
	}
	f.setup = &handoff
	f.showSetup = true
	return true
}
