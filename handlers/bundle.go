package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle gathers every route handler wired in main. Routes take
// the bundle instead of a dozen separate handler values.
type HandlerBundle struct {
	// Personalization.
	GetPersonalizationHandler    gin.HandlerFunc
	UpdatePersonalizationHandler gin.HandlerFunc

	// Public mini-site.
	GetMiniSiteHandler gin.HandlerFunc

	// Legal pages.
	GetLegalSectionsHandler gin.HandlerFunc

	// Counselor administration.
	ListCounselorsHandler  gin.HandlerFunc
	GetCounselorHandler    gin.HandlerFunc
	CreateCounselorHandler gin.HandlerFunc
	UpdateCounselorHandler gin.HandlerFunc
	DeleteCounselorHandler gin.HandlerFunc

	// Transactional email actions.
	SendAppointmentHandler gin.HandlerFunc
	SendDataExportHandler  gin.HandlerFunc
	SendTrainingHandler    gin.HandlerFunc

	// Catalog administration.
	CreateJobOfferHandler gin.HandlerFunc
	DeleteJobOfferHandler gin.HandlerFunc
	CreateProductHandler  gin.HandlerFunc
	DeleteProductHandler  gin.HandlerFunc

	// Exports and invoicing.
	CreateExportHandler   gin.HandlerFunc
	DownloadExportHandler gin.HandlerFunc
	IssueInvoiceHandler   gin.HandlerFunc
}
