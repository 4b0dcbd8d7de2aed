package routes

import (
	"os"

	"showroom-backend/config"
	"showroom-backend/controllers"
	"showroom-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if extra := os.Getenv("FRONTEND_ORIGIN"); extra != "" {
		origins = append(origins, extra)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Staff routes
		staff := api.Group("/staff")
		{
			staff.POST("", controllers.CreateStaff)
			staff.GET("", controllers.GetStaff)
			staff.GET("/:id", controllers.GetStaffMember)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.POST("", controllers.CreateAttendance)
			attendance.GET("", controllers.GetAttendance)
			attendance.PUT("/:id", controllers.UpdateAttendance)
			attendance.DELETE("/:id", controllers.DeleteAttendance)
		}

		// Car inventory routes
		cars := api.Group("/cars")
		{
			cars.POST("", controllers.CreateCar)
			cars.GET("", controllers.GetCars)
			cars.GET("/:id", controllers.GetCar)
			cars.PUT("/:id", controllers.UpdateCar)
			cars.DELETE("/:id", controllers.DeleteCar)
		}

		// Lead routes
		leads := api.Group("/leads")
		{
			leads.POST("", controllers.CreateLead)
			leads.GET("", controllers.GetLeads)
			leads.PUT("/:id", controllers.UpdateLead)
			leads.DELETE("/:id", controllers.DeleteLead)
			leads.POST("/:id/followups", controllers.AddFollowUp)
		}

		// Service routes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", controllers.CreateService)
			servicesGroup.GET("", controllers.GetServices)
			servicesGroup.GET("/options", controllers.GetServiceOptions)
			servicesGroup.GET("/:id", controllers.GetService)
			servicesGroup.PUT("/:id", controllers.UpdateService)
			servicesGroup.DELETE("/:id", controllers.DeleteService)
			servicesGroup.POST("/:id/jobs", controllers.AddJob)
			servicesGroup.PUT("/:id/jobs/:jobId", controllers.UpdateJob)
			servicesGroup.DELETE("/:id/jobs/:jobId", controllers.DeleteJob)
			servicesGroup.GET("/:id/invoice", controllers.GenerateInvoice)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
