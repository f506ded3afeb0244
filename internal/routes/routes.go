package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/handlers"
	"github.com/marketops/backoffice/internal/services"
)

func RegisterRoutes(r *gin.Engine, svc *services.Set) {
	staffHandler := handlers.NewStaffHandler(svc.Staff)
	regionHandler := handlers.NewRegionHandler(svc.Region)
	cityHandler := handlers.NewCityHandler(svc.City)
	categoryHandler := handlers.NewCategoryHandler(svc.Category)
	productHandler := handlers.NewProductHandler(svc.Product)
	imageHandler := handlers.NewImageHandler(svc.Image)
	contactHandler := handlers.NewContactHandler(svc.Contact)
	orderHandler := handlers.NewOrderHandler(svc.Order)

	api := r.Group("/api")
	{
		staff := api.Group("/staff")
		{
			staff.POST("/auth/signup", staffHandler.Signup)
			staff.POST("/auth/signin", staffHandler.Login)
			staff.GET("", staffHandler.List)
			staff.GET("/:id", staffHandler.Get)
			staff.PATCH("/:id", staffHandler.Update)
			staff.POST("/activate", staffHandler.Activate)
			staff.DELETE("/:id", staffHandler.Remove)
		}

		regions := api.Group("/region")
		{
			regions.POST("", regionHandler.Create)
			regions.GET("", regionHandler.List)
			regions.GET("/:id", regionHandler.Get)
			regions.PATCH("/:id", regionHandler.Update)
			regions.DELETE("/:id", regionHandler.Remove)
		}

		cities := api.Group("/city")
		{
			cities.POST("", cityHandler.Create)
			cities.GET("", cityHandler.List)
			cities.GET("/:id", cityHandler.Get)
			cities.PATCH("/:id", cityHandler.Update)
			cities.DELETE("/:id", cityHandler.Remove)
		}

		categories := api.Group("/category")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.PATCH("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Remove)
		}

		products := api.Group("/product")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PATCH("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Remove)
		}

		// Image files are public; everything else requires a token checked
		// in the service layer.
		api.GET("/image/:imageName", imageHandler.Serve)

		contacts := api.Group("/contact")
		{
			contacts.POST("", contactHandler.Create)
			contacts.GET("", contactHandler.List)
			contacts.GET("/search", contactHandler.Search)
			contacts.GET("/code/:uniqueId", contactHandler.GetByUniqueID)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PATCH("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Remove)
		}

		orders := api.Group("/order")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PATCH("/:id", orderHandler.Update)
			orders.DELETE("/:id", orderHandler.Remove)
		}
	}
}
