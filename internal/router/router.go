package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Uyaaan/Bean-There/internal/cafe"
)

func NewRouter(cafeHandler *cafe.Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	cafes := r.Group("/cafes")
	{
		cafes.POST("", cafeHandler.CreateCafe)
		cafes.GET("", cafeHandler.ListCafes)
		cafes.GET("/:id", cafeHandler.GetCafe)
		cafes.PUT("/:id", cafeHandler.UpdateCafe)
		cafes.DELETE("/:id", cafeHandler.DeleteCafe)
	}

	return r
}
