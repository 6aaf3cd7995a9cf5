package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coachly/models"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Export bundles live only as long as their download token: both share
// the same TTL, in Redis and in the JWT claims.

// ErrExportNotFound is returned for unknown or expired export ids.
var ErrExportNotFound = errors.New("export not found or expired")

// ErrExportTokenInvalid is returned for a bad or expired download token.
var ErrExportTokenInvalid = errors.New("export download token invalid")

type exportBundle struct {
	ExportID    string           `json:"exportId"`
	ClientEmail string           `json:"clientEmail"`
	ClientName  string           `json:"clientName"`
	CounselorID string           `json:"counselorId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Invoices    []models.Invoice `json:"invoices"`
}

// CreateDataExport assembles everything stored about one client into a
// JSON bundle, parks it in Redis under the token TTL, and emails the
// client an expiring download link.
func (a *DefaultAdminService) CreateDataExport(ctx context.Context, req DataExportRequest) (*ExportResult, error) {
	all, err := a.Invoices.ByCounselor(ctx, req.CounselorID)
	if err != nil {
		return nil, fmt.Errorf("failed to gather invoices for export: %w", err)
	}
	var clientInvoices []models.Invoice
	for _, inv := range all {
		if inv.ClientEmail == req.ClientEmail {
			clientInvoices = append(clientInvoices, inv)
		}
	}

	bundle := exportBundle{
		ExportID:    uuid.NewString(),
		ClientEmail: req.ClientEmail,
		ClientName:  req.ClientName,
		CounselorID: req.CounselorID,
		GeneratedAt: time.Now().UTC(),
		Invoices:    clientInvoices,
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export bundle: %w", err)
	}

	if err := a.Cache.Set(ctx, exportKey(bundle.ExportID), raw, a.TokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store export bundle: %w", err)
	}

	expiresAt := time.Now().Add(a.TokenTTL)
	token, err := a.signExportToken(bundle.ExportID, expiresAt)
	if err != nil {
		return nil, err
	}
	downloadURL := fmt.Sprintf("%s/api/admin/exports/%s?token=%s", a.BaseURL, bundle.ExportID, token)

	outcome, err := a.Email.SendDataExport(ctx, models.DataExportEmailRequest{
		ClientEmail: req.ClientEmail,
		ClientName:  req.ClientName,
		DownloadURL: downloadURL,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		// The bundle exists and the link works; the operator can
		// resend the notification by hand. Surface, don't fail.
		a.Logger.Warn("export ready but notification email failed", zap.Error(err))
	} else {
		a.Logger.Info("export notification dispatched",
			zap.Bool("queued", outcome.Queued), zap.Bool("sent", outcome.Sent))
	}

	return &ExportResult{
		ExportID:    bundle.ExportID,
		DownloadURL: downloadURL,
		ExpiresAt:   expiresAt,
	}, nil
}

// FetchExport validates the download token and returns the stored
// bundle.
func (a *DefaultAdminService) FetchExport(ctx context.Context, exportID, token string) ([]byte, error) {
	if err := a.verifyExportToken(exportID, token); err != nil {
		return nil, err
	}
	raw, err := a.Cache.Get(ctx, exportKey(exportID)).Bytes()
	if err == redis.Nil {
		return nil, ErrExportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read export bundle: %w", err)
	}
	return raw, nil
}

func exportKey(id string) string { return "export:" + id }

func (a *DefaultAdminService) signExportToken(exportID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   exportID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.TokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign export token: %w", err)
	}
	return signed, nil
}

func (a *DefaultAdminService) verifyExportToken(exportID, token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.TokenSecret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrExportTokenInvalid
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != exportID {
		return ErrExportTokenInvalid
	}
	return nil
}
