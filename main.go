// File: coachly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachly/config"
	"coachly/cron"
	"coachly/database"
	catalogRepo "coachly/database/repository/catalog"
	counselorRepoPkg "coachly/database/repository/counselor"
	invoiceRepoPkg "coachly/database/repository/invoice"
	personalizationRepoPkg "coachly/database/repository/personalization"
	"coachly/handlers"
	"coachly/middleware"
	"coachly/routes"
	"coachly/services/admin"
	"coachly/services/mailer"
	"coachly/services/minisite"
	"coachly/services/personalization"
	"coachly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	agencyRepo := personalizationRepoPkg.NewFirestoreRepo()
	counselorRepo := counselorRepoPkg.NewFirestoreCounselorRepo()
	catRepo := catalogRepo.NewFirestoreCatalogRepo()
	invRepo := invoiceRepoPkg.NewFirestoreInvoiceRepo()

	// Live agency configuration. The server process always holds the
	// Admin SDK capability, so the service account is the identity.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	personalizationSvc := personalization.New(agencyRepo, logger)
	personalizationSvc.Start(rootCtx)
	personalizationSvc.SetIdentity("firebase-adminsdk")

	// Email pipeline: queue client + background delivery worker.
	sender := &mailer.SMTPSender{Logger: logger}
	queueClient := cron.NewQueueClient()
	cron.InitEmailWorker(sender, logger)

	emailSvc := mailer.NewDefaultEmailService(personalizationSvc, queueClient, sender, logger)

	miniSiteSvc := &minisite.DefaultService{
		Counselors: counselorRepo,
		Catalog:    catRepo,
		Cache:      utils.GetCacheClient(),
		CacheTTL:   time.Duration(config.AppConfig.MiniSiteCacheTTLSec) * time.Second,
		Logger:     logger,
	}

	adminSvc := &admin.DefaultAdminService{
		Personalization: personalizationSvc,
		Invoices:        invRepo,
		Email:           emailSvc,
		Cache:           utils.GetCacheClient(),
		Logger:          logger,
		BaseURL:         config.AppConfig.PublicBaseURL,
		TokenSecret:     []byte(config.AppConfig.ExportTokenSecret),
		TokenTTL:        time.Duration(config.AppConfig.ExportTokenTTLMin) * time.Minute,
	}

	personalizationHandler := handlers.NewPersonalizationHandler(personalizationSvc, agencyRepo)
	miniSiteHandler := handlers.NewMiniSiteHandler(miniSiteSvc)
	emailHandler := handlers.NewEmailHandler(emailSvc)
	counselorHandler := handlers.NewCounselorHandler(counselorRepo)
	catalogHandler := handlers.NewCatalogHandler(catRepo)
	adminHandler := handlers.NewAdminHandler(adminSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetPersonalizationHandler:    personalizationHandler.GetPersonalizationHandler,
		UpdatePersonalizationHandler: personalizationHandler.UpdatePersonalizationHandler,

		GetMiniSiteHandler: miniSiteHandler.GetMiniSiteHandler,

		GetLegalSectionsHandler: adminHandler.GetLegalSectionsHandler,

		ListCounselorsHandler:  counselorHandler.ListCounselorsHandler,
		GetCounselorHandler:    counselorHandler.GetCounselorHandler,
		CreateCounselorHandler: counselorHandler.CreateCounselorHandler,
		UpdateCounselorHandler: counselorHandler.UpdateCounselorHandler,
		DeleteCounselorHandler: counselorHandler.DeleteCounselorHandler,

		SendAppointmentHandler: emailHandler.SendAppointmentHandler,
		SendDataExportHandler:  emailHandler.SendDataExportHandler,
		SendTrainingHandler:    emailHandler.SendTrainingHandler,

		CreateJobOfferHandler: catalogHandler.CreateJobOfferHandler,
		DeleteJobOfferHandler: catalogHandler.DeleteJobOfferHandler,
		CreateProductHandler:  catalogHandler.CreateProductHandler,
		DeleteProductHandler:  catalogHandler.DeleteProductHandler,

		CreateExportHandler:   adminHandler.CreateExportHandler,
		DownloadExportHandler: adminHandler.DownloadExportHandler,
		IssueInvoiceHandler:   adminHandler.IssueInvoiceHandler,
	}

	routes.RegisterHealthRoute(router)
	routes.RegisterPublicRoutes(router, handlerBundle)
	routes.RegisterAdminRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}

	personalizationSvc.Stop()
	if err := queueClient.Close(); err != nil {
		logger.Sugar().Errorf("main: closing queue client: %v", err)
	}
	database.CloseDB()
}
