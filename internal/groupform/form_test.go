package groupform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zafarich/groop-admin/models"
)

func strp(s string) *string { return &s }

func TestNewDefaults(t *testing.T) {
	d := New().Snapshot()

	assert.Equal(t, models.PaymentMonthlySameDate, d.PaymentType)
	assert.Equal(t, models.TrialFree, d.TrialPaymentType)
	assert.Equal(t, models.ResourcePrivateGroup, d.TelegramResourceType)
	assert.True(t, d.StudentsCanWrite)
	if assert.Len(t, d.Teachers, 1) {
		assert.True(t, d.Teachers[0].IsPrimary)
		assert.Nil(t, d.Teachers[0].TeacherID)
	}
	assert.Len(t, d.LessonSchedules, 1)
	assert.Empty(t, d.Discounts)
}

func TestApplyMoneyNormalization(t *testing.T) {
	f := New()

	f.Apply(Patch{MonthlyPrice: strp("1 500 000")})
	d := f.Snapshot()
	if assert.NotNil(t, d.MonthlyPrice) {
		assert.Equal(t, 1500000, *d.MonthlyPrice)
	}
	assert.Equal(t, "1 500 000", d.MonthlyPriceDisplay)

	// Нечисловой ввод очищает и число, и отображение.
	f.Apply(Patch{MonthlyPrice: strp("abc")})
	d = f.Snapshot()
	assert.Nil(t, d.MonthlyPrice)
	assert.Empty(t, d.MonthlyPriceDisplay)
}

func TestChannelModeTransition(t *testing.T) {
	f := New()
	f.Apply(Patch{
		PaymentType:      ptrPaymentType(models.PaymentLessonBased),
		TrialPaymentType: ptrTrialType(models.TrialPaid),
	})

	f.SetTelegramResourceType(models.ResourcePrivateChannel)
	d := f.Snapshot()
	assert.Equal(t, models.PaymentMonthlySameDate, d.PaymentType)
	assert.Equal(t, models.TrialOff, d.TrialPaymentType)
	assert.False(t, d.StudentsCanWrite)

	// Повторное переключение идемпотентно.
	f.SetTelegramResourceType(models.ResourcePrivateChannel)
	assert.Equal(t, d, f.Snapshot())

	// Обратный переход возвращает студентам право писать.
	f.SetTelegramResourceType(models.ResourcePrivateGroup)
	d = f.Snapshot()
	assert.True(t, d.StudentsCanWrite)
	assert.Equal(t, models.ResourcePrivateGroup, d.TelegramResourceType)
}

// Переход выполняется в той же мутации, что и смена типа: patch, меняющий
// тип ресурса вместе с другими полями, не должен перетереть принудительные
// значения канала.
func TestApplyResourceTypeWinsOverPatchOrder(t *testing.T) {
	f := New()
	f.Apply(Patch{
		PaymentType:          ptrPaymentType(models.PaymentOneTime),
		TelegramResourceType: ptrResourceType(models.ResourcePrivateChannel),
	})
	d := f.Snapshot()
	assert.Equal(t, models.PaymentMonthlySameDate, d.PaymentType)
	assert.Equal(t, models.TrialOff, d.TrialPaymentType)
	assert.False(t, d.StudentsCanWrite)
}

func TestTeacherMutations(t *testing.T) {
	f := New()
	f.AddTeacher()
	f.SetTeacherID(0, 5)
	f.SetTeacherID(1, 8)

	d := f.Snapshot()
	if assert.Len(t, d.Teachers, 2) {
		assert.True(t, d.Teachers[0].IsPrimary)
		assert.False(t, d.Teachers[1].IsPrimary)
	}

	f.SetPrimaryTeacher(1)
	d = f.Snapshot()
	assert.False(t, d.Teachers[0].IsPrimary)
	assert.True(t, d.Teachers[1].IsPrimary)

	f.RemoveTeacher(0)
	assert.Len(t, f.Snapshot().Teachers, 1)

	// Последняя строка не удаляется.
	f.RemoveTeacher(0)
	assert.Len(t, f.Snapshot().Teachers, 1)
}

func TestScheduleAndDiscountMutations(t *testing.T) {
	f := New()
	f.SetLessonSchedule(0, models.LessonSchedule{DayOfWeek: intp(1), StartTime: "09:00", EndTime: "10:00"})
	f.AddLessonSchedule()
	f.RemoveLessonSchedule(1)
	// Последняя строка расписания не удаляется.
	f.RemoveLessonSchedule(0)
	assert.Len(t, f.Snapshot().LessonSchedules, 1)

	f.AddDiscount()
	f.SetDiscount(0, intp(3), "150 000")
	d := f.Snapshot()
	if assert.Len(t, d.Discounts, 1) {
		assert.Equal(t, 150000, *d.Discounts[0].DiscountAmount)
		assert.Equal(t, "150 000", d.Discounts[0].DiscountAmountDisplay)
	}

	// У скидок ограничения на минимум строк нет.
	f.RemoveDiscount(0)
	assert.Empty(t, f.Snapshot().Discounts)

	// Индексы за пределами списка молча игнорируются.
	f.RemoveDiscount(5)
	f.SetDiscount(2, intp(2), "1000")
}

func TestSnapshotIsolation(t *testing.T) {
	f := New()
	d := f.Snapshot()
	f.AddTeacher()
	assert.Len(t, d.Teachers, 1, "снимок не должен видеть последующих мутаций")
}

func ptrPaymentType(t models.PaymentType) *models.PaymentType { return &t }

func ptrTrialType(t models.TrialPaymentType) *models.TrialPaymentType { return &t }

func ptrResourceType(t models.TelegramResourceType) *models.TelegramResourceType { return &t }
