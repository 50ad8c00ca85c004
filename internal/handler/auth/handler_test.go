package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	authservice "github.com/nurselink/booking-api/internal/service/auth"
	pkgauth "github.com/nurselink/booking-api/pkg/auth"
)

type nurseRepoStub struct {
	nurses map[string]*model.Nurse
}

func (s *nurseRepoStub) Create(_ context.Context, nurse *model.Nurse) error {
	if _, ok := s.nurses[nurse.Username]; ok {
		return repository.ErrDuplicate
	}
	nurse.ID = uuid.New()
	s.nurses[nurse.Username] = nurse
	return nil
}

func (s *nurseRepoStub) Get(_ context.Context, id uuid.UUID) (*model.Nurse, error) {
	for _, n := range s.nurses {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *nurseRepoStub) GetByUsername(_ context.Context, username string) (*model.Nurse, error) {
	if n, ok := s.nurses[username]; ok {
		return n, nil
	}
	return nil, repository.ErrNotFound
}

func (s *nurseRepoStub) List(_ context.Context) ([]*model.Nurse, error) { return nil, nil }

type patientRepoStub struct {
	patients map[string]*model.Patient
}

func (s *patientRepoStub) Create(_ context.Context, patient *model.Patient) error {
	if _, ok := s.patients[patient.Username]; ok {
		return repository.ErrDuplicate
	}
	patient.ID = uuid.New()
	s.patients[patient.Username] = patient
	return nil
}

func (s *patientRepoStub) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *patientRepoStub) GetByUsername(_ context.Context, username string) (*model.Patient, error) {
	if p, ok := s.patients[username]; ok {
		return p, nil
	}
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

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := authservice.NewService(
		&nurseRepoStub{nurses: make(map[string]*model.Nurse)},
		&patientRepoStub{patients: make(map[string]*model.Patient)},
		pkgauth.NewJWTService("test-secret", time.Hour, "booking-api"),
		&revocationStub{revoked: make(map[string]bool)},
		nil,
	)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegisterNurse(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register-nurse",
		gin.H{"username": "nurse_joy", "password": "pw1"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "nurse registered successfully", body["message"])
}

func TestRegisterNurseMissingPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register-nurse",
		gin.H{"username": "nurse_joy"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decodeBody(t, w)["status"])
}

func TestRegisterNurseDuplicate(t *testing.T) {
	r := newTestRouter(t)
	payload := gin.H{"username": "nurse_joy", "password": "pw1"}

	w := doJSON(t, r, http.MethodPost, "/auth/register-nurse", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register-nurse", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already exists", decodeBody(t, w)["message"])
}

func TestLoginNurse(t *testing.T) {
	r := newTestRouter(t)
	payload := gin.H{"username": "nurse_joy", "password": "pw1"}

	w := doJSON(t, r, http.MethodPost, "/auth/register-nurse", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login-nurse", payload, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["access_token"])
}

func TestLoginNurseWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register-nurse",
		gin.H{"username": "nurse_joy", "password": "pw1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login-nurse",
		gin.H{"username": "nurse_joy", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeBody(t, w)["message"])
}

func TestRegisterAndLoginPatient(t *testing.T) {
	r := newTestRouter(t)
	payload := gin.H{"username": "pat", "password": "pw1"}

	w := doJSON(t, r, http.MethodPost, "/auth/register-patient", payload, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login-patient", payload, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	r := newTestRouter(t)
	payload := gin.H{"username": "pat", "password": "pw1"}

	w := doJSON(t, r, http.MethodPost, "/auth/register-patient", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/auth/login-patient", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	token := data["access_token"].(string)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutMissingHeader(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
