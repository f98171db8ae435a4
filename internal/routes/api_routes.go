// groop-admin/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zafarich/groop-admin/internal/handlers"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup, gf *handlers.GroupFormHandler, teachers *handlers.TeacherHandler) {
	apiGroup := api.Group("/api")
	{
		// --- ФОРМА СОЗДАНИЯ ГРУППЫ ---
		drafts := apiGroup.Group("/group-drafts")
		{
			drafts.POST("", gf.CreateDraftHandler)
			drafts.GET("/:id", gf.GetDraftHandler)
			drafts.PATCH("/:id", gf.UpdateDraftHandler)
			drafts.DELETE("/:id", gf.CancelDraftHandler)

			drafts.POST("/:id/teachers", gf.AddTeacherHandler)
			drafts.PUT("/:id/teachers/:index", gf.SetTeacherHandler)
			drafts.PUT("/:id/teachers/:index/primary", gf.SetPrimaryTeacherHandler)
			drafts.DELETE("/:id/teachers/:index", gf.RemoveTeacherHandler)

			drafts.POST("/:id/schedules", gf.AddScheduleHandler)
			drafts.PUT("/:id/schedules/:index", gf.SetScheduleHandler)
			drafts.DELETE("/:id/schedules/:index", gf.RemoveScheduleHandler)

			drafts.POST("/:id/discounts", gf.AddDiscountHandler)
			drafts.PUT("/:id/discounts/:index", gf.SetDiscountHandler)
			drafts.DELETE("/:id/discounts/:index", gf.RemoveDiscountHandler)

			drafts.POST("/:id/validate", gf.ValidateDraftHandler)
			drafts.POST("/:id/submit", gf.SubmitDraftHandler)
			drafts.POST("/:id/setup/dismiss", gf.DismissSetupHandler)
		}

		// --- СПРАВОЧНИКИ ФОРМЫ ---
		apiGroup.GET("/group-form/options", gf.OptionsHandler)

		// --- ПРЕПОДАВАТЕЛИ ---
		apiGroup.GET("/teachers", teachers.ListTeachersHandler)
	}
}
