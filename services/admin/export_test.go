package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tokenService() *DefaultAdminService {
	return &DefaultAdminService{
		Logger:      zap.NewNop(),
		BaseURL:     "https://coachly.app",
		TokenSecret: []byte("test-secret"),
		TokenTTL:    30 * time.Minute,
	}
}

func TestExportTokenRoundTrip(t *testing.T) {
	svc := tokenService()

	token, err := svc.signExportToken("export-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.NoError(t, svc.verifyExportToken("export-1", token))
}

func TestExportTokenRejectsWrongExport(t *testing.T) {
	svc := tokenService()

	token, err := svc.signExportToken("export-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.verifyExportToken("export-2", token), ErrExportTokenInvalid)
}

func TestExportTokenRejectsExpired(t *testing.T) {
	svc := tokenService()

	token, err := svc.signExportToken("export-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.verifyExportToken("export-1", token), ErrExportTokenInvalid)
}

func TestExportTokenRejectsWrongSecret(t *testing.T) {
	svc := tokenService()
	token, err := svc.signExportToken("export-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	other := tokenService()
	other.TokenSecret = []byte("different-secret")
	assert.ErrorIs(t, other.verifyExportToken("export-1", token), ErrExportTokenInvalid)
}

func TestExportTokenRejectsGarbage(t *testing.T) {
	svc := tokenService()
	assert.ErrorIs(t, svc.verifyExportToken("export-1", "not.a.jwt"), ErrExportTokenInvalid)
}
