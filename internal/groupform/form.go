// groop-admin/internal/groupform/form.go
package groupform

import (
	"sync"

	"github.com/zafarich/groop-admin/models"
)

// Form - живое состояние формы создания группы. Черновик создаётся заново на
// каждое открытие формы, меняется только пользовательским вводом и
// нормализацией и выбрасывается при уходе со страницы.
//
// Мьютекс защищает состояние от параллельных запросов одной и той же сессии.
// Submit не держит его на время сетевого вызова: наружу смотрит только флаг
// submitting, который отклоняет повторную отправку, пока первая в пути.
type Form struct {
	mu           sync.Mutex
	draft        models.GroupDraft
	errorMessage string
	submitting   bool

	// Одноразовое состояние после успешного создания.
	setup     *models.SetupInstructions
	showSetup bool
}

// New возвращает форму со значениями по умолчанию: одна строка преподавателя
// (основной, не выбран), одна пустая строка расписания, помесячная оплата.
func New() *Form {
	return &Form{
		draft: models.GroupDraft{
			PaymentType:          models.PaymentMonthlySameDate,
			TrialPaymentType:     models.TrialFree,
			Teachers:             []models.TeacherAssignment{{IsPrimary: true}},
			LessonSchedules:      []models.LessonSchedule{{}},
			Discounts:            []models.Discount{},
			StudentsCanWrite:     true,
			TelegramResourceType: models.ResourcePrivateGroup,
		},
	}
}

// Snapshot возвращает копию черновика; списки копируются, чтобы читатель
// не видел последующих мутаций.
func (f *Form) Snapshot() models.GroupDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) snapshotLocked() models.GroupDraft {
	d := f.draft
	d.Teachers = append([]models.TeacherAssignment(nil), f.draft.Teachers...)
	d.LessonSchedules = append([]models.LessonSchedule(nil), f.draft.LessonSchedules...)
	d.Discounts = append([]models.Discount(nil), f.draft.Discounts...)
	return d
}

func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessage
}

func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Setup возвращает инструкции подключения Telegram и флаг показа диалога.
func (f *Form) Setup() (*models.SetupInstructions, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setup, f.showSetup
}

// Patch - частичное обновление скалярных полей черновика. nil-поле означает
// "не трогать". Денежные поля принимают сырой текст пользователя и проходят
// нормализацию; тип ресурса проходит синхронный переход режима.
type Patch struct {
	Name                    *string                      `json:"name"`
	Description             *string                      `json:"description"`
	MonthlyPrice            *string                      `json:"monthlyPrice"`
	WholePeriodPrice        *string                      `json:"wholePeriodPrice"`
	TrialPrice              *string                      `json:"trialPrice"`
	CourseStartDate         *string                      `json:"courseStartDate"`
	CourseEndDate           *string                      `json:"courseEndDate"`
	PaymentType             *models.PaymentType          `json:"paymentType"`
	TrialPaymentType        *models.TrialPaymentType     `json:"trialPaymentType"`
	LessonsPerPaymentPeriod *int                         `json:"lessonsPerPaymentPeriod"`
	StudentsCanWrite        *bool                        `json:"studentsCanWrite"`
	TelegramResourceType    *models.TelegramResourceType `json:"telegramResourceType"`
}

// Apply вносит частичное обновление в черновик. Переход группа/канал
// выполняется последним, чтобы его принудительные значения не были затёрты
// другими полями того же запроса.
func (f *Form) Apply(p Patch) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p.Name != nil {
		f.draft.Name = *p.Name
	}
	if p.Description != nil {
		f.draft.Description = *p.Description
	}
	if p.MonthlyPrice != nil {
		f.draft.MonthlyPrice, f.draft.MonthlyPriceDisplay = normalizeMoney(*p.MonthlyPrice)
	}
	if p.WholePeriodPrice != nil {
		f.draft.WholePeriodPrice, f.draft.WholePeriodPriceDisplay = normalizeMoney(*p.WholePeriodPrice)
	}
	if p.TrialPrice != nil {
		f.draft.TrialPrice, f.draft.TrialPriceDisplay = normalizeMoney(*p.TrialPrice)
	}
	if p.CourseStartDate != nil {
		f.draft.CourseStartDate = *p.CourseStartDate
	}
	if p.CourseEndDate != nil {
		f.draft.CourseEndDate = *p.CourseEndDate
	}
	if p.PaymentType != nil {
		f.draft.PaymentType = *p.PaymentType
	}
	if p.TrialPaymentType != nil {
		f.draft.TrialPaymentType = *p.TrialPaymentType
	}
	if p.LessonsPerPaymentPeriod != nil {
		f.draft.LessonsPerPaymentPeriod = p.LessonsPerPaymentPeriod
	}
	if p.StudentsCanWrite != nil {
		f.draft.StudentsCanWrite = *p.StudentsCanWrite
	}
	if p.TelegramResourceType != nil {
		f.setTelegramResourceTypeLocked(*p.TelegramResourceType)
	}
}

// SetTelegramResourceType переключает режим группа/канал.
func (f *Form) SetTelegramResourceType(t models.TelegramResourceType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setTelegramResourceTypeLocked(t)
}

// setTelegramResourceTypeLocked выполняет переход синхронно внутри той же
// мутации: в режиме канала принудительно ставятся помесячная оплата,
// отключённый пробный урок и запрет писать студентам; обратный переход
// возвращает студентам право писать. Повторное переключение идемпотентно.
func (f *Form) setTelegramResourceTypeLocked(t models.TelegramResourceType) {
	f.draft.TelegramResourceType = t
	if t == models.ResourcePrivateChannel {
		f.draft.PaymentType = models.PaymentMonthlySameDate
		f.draft.TrialPaymentType = models.TrialOff
		f.draft.StudentsCanWrite = false
	} else {
		f.draft.StudentsCanWrite = true
	}
}

// normalizeMoney превращает сырой текст в пару (каноническое число,
// отображаемая строка). Нечисловой ввод очищает оба поля.
func normalizeMoney(raw string) (*int, string) {
	n, ok := ParseMoneyInput(raw)
	if !ok {
		return nil, ""
	}
	return &n, PrettyMoney(n)
}

// --- Преподаватели ---

// AddTeacher добавляет пустую строку преподавателя (не основной).
func (f *Form) AddTeacher() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Teachers = append(f.draft.Teachers, models.TeacherAssignment{})
}

// RemoveTeacher удаляет строку по индексу; последнюю строку удалить нельзя.
func (f *Form) RemoveTeacher(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.Teachers) || len(f.draft.Teachers) <= 1 {
		return
	}
	f.draft.Teachers = append(f.draft.Teachers[:index], f.draft.Teachers[index+1:]...)
}

// SetTeacherID выбирает преподавателя в строке.
func (f *Form) SetTeacherID(index int, teacherID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.Teachers) {
		return
	}
	f.draft.Teachers[index].TeacherID = &teacherID
}

// SetPrimaryTeacher делает строку index основной, снимая флаг с остальных.
func (f *Form) SetPrimaryTeacher(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.Teachers) {
		return
	}
	for i := range f.draft.Teachers {
		f.draft.Teachers[i].IsPrimary = i == index
	}
}

// --- Расписание ---

// AddLessonSchedule добавляет пустую строку расписания.
func (f *Form) AddLessonSchedule() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.LessonSchedules = append(f.draft.LessonSchedules, models.LessonSchedule{})
}

// RemoveLessonSchedule удаляет строку по индексу; последнюю строку удалить нельзя.
func (f *Form) RemoveLessonSchedule(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.LessonSchedules) || len(f.draft.LessonSchedules) <= 1 {
		return
	}
	f.draft.LessonSchedules = append(f.draft.LessonSchedules[:index], f.draft.LessonSchedules[index+1:]...)
}

// SetLessonSchedule заполняет строку расписания целиком.
func (f *Form) SetLessonSchedule(index int, s models.LessonSchedule) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.LessonSchedules) {
		return
	}
	f.draft.LessonSchedules[index] = s
}

// --- Скидки ---

// AddDiscount добавляет пустую скидку.
func (f *Form) AddDiscount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Discounts = append(f.draft.Discounts, models.Discount{})
}

// RemoveDiscount удаляет скидку по индексу.
func (f *Form) RemoveDiscount(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.Discounts) {
		return
	}
	f.draft.Discounts = append(f.draft.Discounts[:index], f.draft.Discounts[index+1:]...)
}

// SetDiscount обновляет скидку: число месяцев и сырой текст суммы.
func (f *Form) SetDiscount(index int, months *int, rawAmount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.draft.Discounts) {
		return
	}
	f.draft.Discounts[index].Months = months
	f.draft.Discounts[index].DiscountAmount, f.draft.Discounts[index].DiscountAmountDisplay = normalizeMoney(rawAmount)
}

// Validate прогоняет цепочку проверок и запоминает сообщение первой
// нарушенной. Возвращает true, если черновик валиден.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorMessage = Validate(f.draft)
	return f.errorMessage == ""
}

// DismissSetup закрывает диалог подключения Telegram и возвращает маршрут,
// на который следует увести пользователя.
func (f *Form) DismissSetup() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showSetup = false
	return "/groups"
}
