package main

import (
	"log"

	"quiz-catalog-backend/internal/config"
	"quiz-catalog-backend/internal/database"
	"quiz-catalog-backend/internal/handlers"
	"quiz-catalog-backend/internal/services"

	_ "quiz-catalog-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Catalog API
// @version         1.0
// @description     API for managing quiz categories and multiple-choice questions
// @host            localhost:3000
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", handlers.Index)

	r.GET("/categories", categoryHandler.ListCategories)
	r.POST("/categories", categoryHandler.CreateCategory)
	r.GET("/categories/:slug", categoryHandler.GetCategory)
	r.PATCH("/categories/:slug", categoryHandler.UpdateCategory)
	r.DELETE("/categories/:slug", categoryHandler.DeleteCategory)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.GET("/questions/:cat_id", questionHandler.ListQuestionsByCategory)

	r.GET("/question/:question_id", questionHandler.GetQuestion)
	r.PATCH("/question/:question_id", questionHandler.UpdateQuestion)
	r.DELETE("/question/:question_id", questionHandler.DeleteQuestion)

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
