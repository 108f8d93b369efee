// Package router assembles the HTTP routes and their dependencies.
package router

import (
	"net/http"

	"summit/internal/config"
	_ "summit/internal/docs" // swagger docs
	"summit/internal/handlers"
	"summit/internal/middleware"
	"summit/internal/repositories"
	"summit/internal/services"
	"summit/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires services and handlers over db and returns the gin engine.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	validator.Register()

	goalRepo := repositories.NewGoalRepository(db)
	focusAreaService := services.NewFocusAreaService(db)
	goalService := services.NewGoalService(goalRepo, focusAreaService, cfg.GoalDeletePolicy)
	progressService := services.NewProgressService(goalRepo)
	habitService := services.NewHabitService(db, focusAreaService)
	reflectionService := services.NewReflectionService(db)
	wisdomService := services.NewWisdomService(db)

	goalHandler := handlers.NewGoalHandler(goalService, progressService)
	focusAreaHandler := handlers.NewFocusAreaHandler(focusAreaService)
	habitHandler := handlers.NewHabitHandler(habitService)
	reflectionHandler := handlers.NewReflectionHandler(reflectionService)
	wisdomHandler := handlers.NewWisdomHandler(wisdomService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.NoRoute(middleware.NotFound())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	goals := v1.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.GET("/:id/with-children", goalHandler.GetGoalWithChildren)
	goals.GET("/:id/hierarchy", goalHandler.GetGoalHierarchy)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.PUT("/:id/progress", goalHandler.UpdateProgress)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	focusAreas := v1.Group("/focus-areas")
	focusAreas.GET("", focusAreaHandler.ListFocusAreas)
	focusAreas.POST("", focusAreaHandler.CreateFocusArea)
	focusAreas.GET("/:id", focusAreaHandler.GetFocusArea)
	focusAreas.PUT("/:id", focusAreaHandler.UpdateFocusArea)
	focusAreas.DELETE("/:id", focusAreaHandler.DeleteFocusArea)

	habits := v1.Group("/habits")
	habits.GET("", habitHandler.ListHabits)
	habits.POST("", habitHandler.CreateHabit)
	habits.GET("/:id", habitHandler.GetHabit)
	habits.PUT("/:id", habitHandler.UpdateHabit)
	habits.DELETE("/:id", habitHandler.DeleteHabit)
	habits.GET("/:id/logs", habitHandler.GetHabitLogs)
	habits.PUT("/:id/logs/:date", habitHandler.LogHabit)

	reflections := v1.Group("/reflections")
	reflections.GET("", reflectionHandler.ListReflections)
	reflections.GET("/:kind/:date", reflectionHandler.GetReflection)
	reflections.PUT("/:kind/:date", reflectionHandler.UpsertReflection)
	reflections.DELETE("/:kind/:date", reflectionHandler.DeleteReflection)

	wisdom := v1.Group("/wisdom")
	wisdom.GET("", wisdomHandler.ListWisdom)
	wisdom.POST("", wisdomHandler.CreateWisdom)
	wisdom.GET("/random", wisdomHandler.GetRandomWisdom)
	wisdom.GET("/:id", wisdomHandler.GetWisdom)
	wisdom.PUT("/:id", wisdomHandler.UpdateWisdom)
	wisdom.DELETE("/:id", wisdomHandler.DeleteWisdom)

	return router
}
