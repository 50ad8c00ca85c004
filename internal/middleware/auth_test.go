package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	authservice "github.com/nurselink/booking-api/internal/service/auth"
	pkgauth "github.com/nurselink/booking-api/pkg/auth"
)

type nurseRepoStub struct{}

func (nurseRepoStub) Create(context.Context, *model.Nurse) error { return nil }
func (nurseRepoStub) Get(context.Context, uuid.UUID) (*model.Nurse, error) {
	return nil, repository.ErrNotFound
}
func (nurseRepoStub) GetByUsername(context.Context, string) (*model.Nurse, error) {
	return nil, repository.ErrNotFound
}
func (nurseRepoStub) List(context.Context) ([]*model.Nurse, error) { return nil, nil }

type patientRepoStub struct{}

func (patientRepoStub) Create(context.Context, *model.Patient) error { return nil }
func (patientRepoStub) Get(context.Context, uuid.UUID) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}
func (patientRepoStub) GetByUsername(context.Context, string) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}

type revocationStub struct {
	revoked map[string]bool
}

func (s *revocationStub) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *revocationStub) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, pkgauth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := pkgauth.NewJWTService("test-secret", time.Hour, "booking-api")
	svc := authservice.NewService(
		nurseRepoStub{},
		patientRepoStub{},
		tokens,
		&revocationStub{revoked: make(map[string]bool)},
		nil,
	)

	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(svc).Authenticate(), func(c *gin.Context) {
		id, typ, ok := handler.Principal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "type": string(typ)})
	})
	return r, tokens
}

func TestAuthenticateSetsPrincipal(t *testing.T) {
	r, tokens := newAuthTestRouter(t)

	id := uuid.New()
	token, err := tokens.Generate(id, model.PrincipalPatient)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
	assert.Contains(t, w.Body.String(), "patient")
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
