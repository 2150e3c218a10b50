package routes

import (
	"github.com/pixperk/pocketmind-server/internal/config"
	"github.com/pixperk/pocketmind-server/internal/handlers"
	"github.com/pixperk/pocketmind-server/internal/middleware"
	"github.com/pixperk/pocketmind-server/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	authService := services.NewAuthService(db)
	noteService := services.NewNoteService(db)
	plannerService := services.NewPlannerService(db)
	moneyService := services.NewMoneyService(db)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	noteHandler := handlers.NewNoteHandler(noteService)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	moneyHandler := handlers.NewMoneyHandler(moneyService)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	note := router.Group("/note")
	note.Use(middleware.AuthMiddleware(cfg))
	{
		note.POST("/create", noteHandler.CreateNote)
		note.GET("/", noteHandler.GetNotes)
		note.POST("/seed", noteHandler.SeedNotes)
		note.PATCH("/link/:noteId", noteHandler.LinkNote)
		note.DELETE("/:noteId", noteHandler.DeleteNote)
	}

	planner := router.Group("/planner")
	planner.Use(middleware.AuthMiddleware(cfg))
	{
		planner.POST("/create", plannerHandler.CreateTask)
		planner.GET("/", plannerHandler.GetTasks)
		planner.PUT("/:taskId", plannerHandler.UpdateTask)
		planner.DELETE("/:taskId", plannerHandler.DeleteTask)
	}

	money := router.Group("/money")
	money.Use(middleware.AuthMiddleware(cfg))
	{
		money.POST("/lend", moneyHandler.LendMoney)
		money.PUT("/clear/:debtId", moneyHandler.ClearDebt)
		money.GET("/", moneyHandler.GetTransactions)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
