// groop-admin/models/group.go
package models

// PaymentType - схема оплаты группы.
type PaymentType string

const (
	PaymentMonthlySameDate PaymentType = "MONTHLY_SAME_DATE"
	PaymentOneTime         PaymentType = "ONE_TIME"
	PaymentLessonBased     PaymentType = "LESSON_BASED"
)

// Valid сообщает, известно ли платформе такое значение.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentMonthlySameDate, PaymentOneTime, PaymentLessonBased:
		return true
	}
	return false
}

// TrialPaymentType - режим пробного урока.
type TrialPaymentType string

const (
	TrialFree TrialPaymentType = "FREE"
	TrialPaid TrialPaymentType = "PAID"
	TrialOff  TrialPaymentType = "OFF"
)

func (t TrialPaymentType) Valid() bool {
	switch t {
	case TrialFree, TrialPaid, TrialOff:
		return true
	}
	return false
}

// TelegramResourceType - тип создаваемого Telegram-ресурса.
type TelegramResourceType string

const (
	ResourcePrivateGroup   TelegramResourceType = "PRIVATE_GROUP"
	ResourcePrivateChannel TelegramResourceType = "PRIVATE_CHANNEL"
)

func (t TelegramResourceType) Valid() bool {
	switch t {
	case ResourcePrivateGroup, ResourcePrivateChannel:
		return true
	}
	return false
}

// TeacherAssignment - строка списка преподавателей в черновике.
// TeacherID равен nil, пока преподаватель не выбран.
type TeacherAssignment struct {
	TeacherID *int `json:"teacherId"`
	IsPrimary bool `json:"isPrimary"`
}

// LessonSchedule - строка расписания занятий. DayOfWeek: 1 (понедельник) .. 7 (воскресенье).
type LessonSchedule struct {
	DayOfWeek *int   `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Discount - скидка при оплате сразу за несколько месяцев (минимум 2).
type Discount struct {
	Months                *int   `json:"months"`
	DiscountAmount        *int   `json:"discountAmount"`
	DiscountAmountDisplay string `json:"discountAmountDisplay"`
}

// GroupDraft - состояние формы создания группы/канала. Денежные поля хранятся
// парой: каноническое число и отображаемая строка с разбивкой по разрядам.
// Даты принимаются как в формате DD.MM.YYYY, так и YYYY-MM-DD.
type GroupDraft struct {
	Name                    string               `json:"name"`
	Description             string               `json:"description"`
	MonthlyPrice            *int                 `json:"monthlyPrice"`
	MonthlyPriceDisplay     string               `json:"monthlyPriceDisplay"`
	WholePeriodPrice        *int                 `json:"wholePeriodPrice"`
	WholePeriodPriceDisplay string               `json:"wholePeriodPriceDisplay"`
	CourseStartDate         string               `json:"courseStartDate"`
	CourseEndDate           string               `json:"courseEndDate"`
	PaymentType             PaymentType          `json:"paymentType"`
	TrialPaymentType        TrialPaymentType     `json:"trialPaymentType"`
	TrialPrice              *int                 `json:"trialPrice"`
	TrialPriceDisplay       string               `json:"trialPriceDisplay"`
	LessonsPerPaymentPeriod *int                 `json:"lessonsPerPaymentPeriod"`
	Teachers                []TeacherAssignment  `json:"teachers"`
	LessonSchedules         []LessonSchedule     `json:"lessonSchedules"`
	Discounts               []Discount           `json:"discounts"`
	StudentsCanWrite        bool                 `json:"studentsCanWrite"`
	TelegramResourceType    TelegramResourceType `json:"telegramResourceType"`
}

// IsChannel сообщает, что сущность вырождается в канал: оплата фиксируется
// помесячной, пробный урок и право писать отключаются, а все "групповые"
// поля исключаются из валидации и из исходящего запроса.
func (d GroupDraft) IsChannel() bool {
	return d.TelegramResourceType == ResourcePrivateChannel
}

// SetupInstructions - одноразовые инструкции по подключению Telegram-ресурса,
// которые платформа возвращает после успешного создания группы.
type SetupInstructions struct {
	BotUsername          string               `json:"botUsername"`
	TelegramResourceType TelegramResourceType `json:"telegramResourceType"`
	ConnectToken         string               `json:"connectToken"`
}
