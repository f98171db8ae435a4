// groop-admin/internal/handlers/group_form_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zafarich/groop-admin/internal/groupform"
	"github.com/zafarich/groop-admin/internal/platform"
	"github.com/zafarich/groop-admin/internal/store"
	"github.com/zafarich/groop-admin/models"
)

// GroupFormHandler инкапсулирует зависимости формы создания группы:
// реестр черновиков и клиент платформенного API.
type GroupFormHandler struct {
	Drafts *store.Registry
	API    *platform.Client
}

// NewGroupFormHandler создает новый экземпляр GroupFormHandler.
func NewGroupFormHandler(drafts *store.Registry, api *platform.Client) *GroupFormHandler {
	return &GroupFormHandler{Drafts: drafts, API: api}
}

// draftView - снимок черновика вместе с производными значениями,
// как его ждёт презентационный слой.
func draftView(id string, f *groupform.Form) gin.H {
	snap := f.Snapshot()
	setup, showSetup := f.Setup()
	return gin.H{
		"id":                     id,
		"form":                   snap,
		"summary":                groupform.Summarize(snap),
		"loading":                f.Loading(),
		"errorMessage":           f.ErrorMessage(),
		"showTelegramSetupModal": showSetup,
		"setupInstructions":      setup,
	}
}

// lookup достаёт черновик по :id; при промахе сам отвечает 404.
func (h *GroupFormHandler) lookup(c *gin.Context) (string, *groupform.Form, bool) {
	id := c.Param("id")
	f, ok := h.Drafts.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Черновик не найден или истёк"})
		return "", nil, false
	}
	return id, f, true
}

// indexParam разбирает числовой параметр :index.
func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неверный индекс: " + c.Param("index")})
		return 0, false
	}
	return idx, true
}

// CreateDraftHandler открывает новую сессию заполнения формы.
func (h *GroupFormHandler) CreateDraftHandler(c *gin.Context) {
	id, f := h.Drafts.Create()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": draftView(id, f)})
}

// GetDraftHandler возвращает черновик и производные значения.
func (h *GroupFormHandler) GetDraftHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// UpdateDraftHandler вносит частичное обновление скалярных полей.
// Денежные поля приходят сырым текстом, даты - в любом из принимаемых
// форматов; смена типа ресурса выполняет переход группа/канал до того,
// как ответ соберёт производные значения.
func (h *GroupFormHandler) UpdateDraftHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}

	var patch groupform.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неверные данные: " + err.Error()})
		return
	}
	if patch.PaymentType != nil && !patch.PaymentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неизвестный тип оплаты: " + string(*patch.PaymentType)})
		return
	}
	if patch.TrialPaymentType != nil && !patch.TrialPaymentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неизвестный тип пробного урока: " + string(*patch.TrialPaymentType)})
		return
	}
	if patch.TelegramResourceType != nil && !patch.TelegramResourceType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неизвестный тип Telegram-ресурса: " + string(*patch.TelegramResourceType)})
		return
	}

	f.Apply(patch)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// --- Преподаватели ---

func (h *GroupFormHandler) AddTeacherHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	f.AddTeacher()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

func (h *GroupFormHandler) RemoveTeacherHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	f.RemoveTeacher(idx)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// SetTeacherHandler выбирает преподавателя в строке списка.
func (h *GroupFormHandler) SetTeacherHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var req struct {
		TeacherID int `json:"teacherId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неверные данные: " + err.Error()})
		return
	}
	f.SetTeacherID(idx, req.TeacherID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// SetPrimaryTeacherHandler назначает строку основной; основной преподаватель
// всегда ровно один.
func (h *GroupFormHandler) SetPrimaryTeacherHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	f.SetPrimaryTeacher(idx)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// --- Расписание ---

func (h *GroupFormHandler) AddScheduleHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	f.AddLessonSchedule()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

func (h *GroupFormHandler) RemoveScheduleHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	f.RemoveLessonSchedule(idx)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

func (h *GroupFormHandler) SetScheduleHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var req models.LessonSchedule
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неверные данные: " + err.Error()})
		return
	}
	f.SetLessonSchedule(idx, req)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// --- Скидки ---

func (h *GroupFormHandler) AddDiscountHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	f.AddDiscount()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

func (h *GroupFormHandler) RemoveDiscountHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	f.RemoveDiscount(idx)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// SetDiscountHandler обновляет скидку; сумма приходит сырым текстом.
func (h *GroupFormHandler) SetDiscountHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var req struct {
		Months         *int   `json:"months"`
		DiscountAmount string `json:"discountAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Неверные данные: " + err.Error()})
		return
	}
	f.SetDiscount(idx, req.Months, req.DiscountAmount)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(id, f)})
}

// --- Валидация и отправка ---

// ValidateDraftHandler прогоняет цепочку проверок без отправки.
func (h *GroupFormHandler) ValidateDraftHandler(c *gin.Context) {
	_, f, ok := h.lookup(c)
	if !ok {
		return
	}
	valid := f.Validate()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"valid": valid, "message": f.ErrorMessage()},
	})
}

// SubmitDraftHandler - точка отправки. Ошибки валидации и платформы не
// становятся HTTP-ошибками: ответ всегда несёт булев success и сообщение,
// решение о показе остаётся за презентационным слоем.
func (h *GroupFormHandler) SubmitDraftHandler(c *gin.Context) {
	_, f, ok := h.lookup(c)
	if !ok {
		return
	}

	token := c.GetString("platformToken")
	if f.Submit(c.Request.Context(), h.API, token) {
		setup, _ := f.Setup()
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"message":           "Guruh muvaffaqiyatli yaratildi!",
			"setupInstructions": setup,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "message": f.ErrorMessage()})
}

// DismissSetupHandler закрывает диалог подключения Telegram: черновик своё
// отслужил и выбрасывается, пользователя уводим на список групп.
func (h *GroupFormHandler) DismissSetupHandler(c *gin.Context) {
	id, f, ok := h.lookup(c)
	if !ok {
		return
	}
	redirect := f.DismissSetup()
	h.Drafts.Delete(id)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"redirect": redirect}})
}

// CancelDraftHandler - отмена заполнения: черновик выбрасывается без следа.
func (h *GroupFormHandler) CancelDraftHandler(c *gin.Context) {
	id, _, ok := h.lookup(c)
	if !ok {
		return
	}
	h.Drafts.Delete(id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OptionsHandler отдаёт справочники формы: типы оплаты с пояснениями,
// режимы пробного урока, типы Telegram-ресурса и дни недели.
func (h *GroupFormHandler) OptionsHandler(c *gin.Context) {
	descriptions := make(map[string]string, len(groupform.PaymentTypes))
	for _, opt := range groupform.PaymentTypes {
		descriptions[opt.Value] = groupform.PaymentTypeDescription(models.PaymentType(opt.Value))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"paymentTypes":            groupform.PaymentTypes,
		"paymentTypeDescriptions": descriptions,
		"trialPaymentTypes":       groupform.TrialPaymentTypes,
		"telegramResourceTypes":   groupform.TelegramResourceTypes,
		"daysOfWeek":              groupform.DaysOfWeek,
	}})
}
