package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"familysync-backend/internal/core"
	"familysync-backend/internal/middleware"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Profile  core.ProfileService
	Family   core.FamilyService
	Child    core.ChildService
	Task     core.TaskService
	Calendar core.CalendarService
	Shopping core.ShoppingService
	Note     core.NoteService
	Schedule core.ScheduleService
}

// SetupRoutes configures all application routes under /api/v1 plus the
// public /health probe. Global middleware (logging, recovery, CORS) is
// applied to the router before this is called, in main.
func SetupRoutes(router *gin.Engine, verifier middleware.TokenVerifier, logger *zap.Logger, svcs Services) {
	authMW := middleware.NewAuthMiddleware(verifier)

	profileHandler := NewProfileHandler(svcs.Profile)
	familyHandler := NewFamilyHandler(svcs.Family)
	childHandler := NewChildHandler(svcs.Child)
	taskHandler := NewTaskHandler(svcs.Task)
	calendarHandler := NewCalendarHandler(svcs.Calendar)
	shoppingHandler := NewShoppingHandler(svcs.Shopping)
	noteHandler := NewNoteHandler(svcs.Note)
	scheduleHandler := NewScheduleHandler(svcs.Schedule)

	apiV1 := router.Group("/api/v1", authMW.VerifyToken())
	{
		users := apiV1.Group("/users")
		{
			users.POST("/initialize", profileHandler.InitializeProfile)
			users.GET("/me", profileHandler.GetCurrentProfile)
			users.PUT("/profile", profileHandler.UpdateProfile)
		}

		families := apiV1.Group("/families")
		{
			families.GET("/:familyId", familyHandler.GetFamily)
			families.PUT("/:familyId/settings", familyHandler.UpdateSettings)
		}

		apiV1.POST("/children", childHandler.CreateChild)

		tasks := apiV1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/:familyId/:taskId/complete", taskHandler.CompleteTask)
		}

		calendar := apiV1.Group("/calendar")
		{
			calendar.POST("", calendarHandler.CreateEvent)
			calendar.PUT("/:familyId/:eventId", calendarHandler.UpdateEvent)
		}

		shopping := apiV1.Group("/shopping")
		{
			shopping.POST("", shoppingHandler.CreateItem)
			shopping.POST("/:familyId/:listId/items/:itemId/purchase", shoppingHandler.MarkItemPurchased)
		}

		notes := apiV1.Group("/notes")
		{
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/:familyId", noteHandler.ListNotes)
			notes.POST("/:familyId/:noteId/dismiss", noteHandler.DismissNote)
		}

		apiV1.POST("/schedule/optimize", scheduleHandler.OptimizeSchedule)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}
