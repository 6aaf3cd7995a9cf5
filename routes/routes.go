package routes

import (
	"net/http"
	"time"

	"coachly/handlers"
	"coachly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints the marketing pages and
// mini-sites consume without authentication.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/personalization", hb.GetPersonalizationHandler)
		api.GET("/minisite/:publicProfileName", hb.GetMiniSiteHandler)
		api.GET("/legal", hb.GetLegalSectionsHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints. Everything
// here requires a Firebase ID token carrying the admin claim, except
// the export download which is gated by its own signed link token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Download links arrive from email clients without a session.
	r.GET("/api/admin/exports/:id", hb.DownloadExportHandler)

	api := r.Group("/api/admin")
	api.Use(middleware.FirebaseAuthMiddleware(), middleware.AdminOnly())
	{
		api.PUT("/personalization", hb.UpdatePersonalizationHandler)

		api.GET("/counselors", hb.ListCounselorsHandler)
		api.GET("/counselors/:id", hb.GetCounselorHandler)
		api.POST("/counselors", hb.CreateCounselorHandler)
		api.PUT("/counselors/:id", hb.UpdateCounselorHandler)
		api.DELETE("/counselors/:id", hb.DeleteCounselorHandler)

		api.POST("/emails/appointment", hb.SendAppointmentHandler)
		api.POST("/emails/export", hb.SendDataExportHandler)
		api.POST("/emails/training", hb.SendTrainingHandler)

		api.POST("/job-offers", hb.CreateJobOfferHandler)
		api.DELETE("/job-offers/:id", hb.DeleteJobOfferHandler)
		api.POST("/products", hb.CreateProductHandler)
		api.DELETE("/products/:id", hb.DeleteProductHandler)

		api.POST("/exports", hb.CreateExportHandler)
		api.POST("/invoices", hb.IssueInvoiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coachly"})
	})
}

// CORSMiddleware returns the CORS policy shared by all routes.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
