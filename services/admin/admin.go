package admin

import (
	"time"

	invoiceRepo "coachly/database/repository/invoice"
	"coachly/services/mailer"
	"coachly/services/personalization"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Personalization *personalization.Service
	Invoices        invoiceRepo.InvoiceRepository
	Email           mailer.EmailService
	Cache           *redis.Client
	Logger          *zap.Logger

	// Export download link parameters.
	BaseURL     string
	TokenSecret []byte
	TokenTTL    time.Duration
}
