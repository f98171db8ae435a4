// groop-admin/models/payload.go
package models

// TeacherPayload, SchedulePayload и DiscountPayload - элементы исходящего
// запроса. В отличие от строк черновика здесь нет nil-значений: валидация
// гарантирует заполненность до сборки запроса.
type TeacherPayload struct {
	TeacherID int  `json:"teacherId"`
	IsPrimary bool `json:"isPrimary"`
}

type SchedulePayload struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type DiscountPayload struct {
	Months         int `json:"months"`
	DiscountAmount int `json:"discountAmount"`
}

// CreateGroupRequest - тело POST /v1/groups. Базовые поля присутствуют всегда;
// групповые поля в режиме канала не сериализуются вовсе (omitempty), а не
// передаются как null.
type CreateGroupRequest struct {
	Name                 string               `json:"name"`
	Description          string               `json:"description,omitempty"`
	MonthlyPrice         int                  `json:"monthlyPrice"`
	TelegramResourceType TelegramResourceType `json:"telegramResourceType"`
	StudentsCanWrite     bool                 `json:"studentsCanWrite"`

	// Только для групп.
	WholePeriodPrice        *int              `json:"wholePeriodPrice,omitempty"`
	CourseStartDate         string            `json:"courseStartDate,omitempty"`
	CourseEndDate           string            `json:"courseEndDate,omitempty"`
	PaymentType             PaymentType       `json:"paymentType,omitempty"`
	TrialPaymentType        TrialPaymentType  `json:"trialPaymentType,omitempty"`
	TrialPrice              *int              `json:"trialPrice,omitempty"`
	LessonsPerPaymentPeriod *int              `json:"lessonsPerPaymentPeriod,omitempty"`
	Teachers                []TeacherPayload  `json:"teachers,omitempty"`
	LessonSchedules         []SchedulePayload `json:"lessonSchedules,omitempty"`
	Discounts               []DiscountPayload `json:"discounts,omitempty"`
}
