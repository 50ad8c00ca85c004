package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurselink/booking-api/internal/model"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "booking-api")
	id := uuid.New()

	token, err := svc.Generate(id, model.PrincipalNurse)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.PrincipalID)
	assert.Equal(t, model.PrincipalNurse, claims.PrincipalType)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateCarriesPrincipalType(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "booking-api")

	nurseToken, err := svc.Generate(uuid.New(), model.PrincipalNurse)
	require.NoError(t, err)
	patientToken, err := svc.Generate(uuid.New(), model.PrincipalPatient)
	require.NoError(t, err)

	nurseClaims, err := svc.Validate(nurseToken)
	require.NoError(t, err)
	patientClaims, err := svc.Validate(patientToken)
	require.NoError(t, err)

	assert.Equal(t, model.PrincipalNurse, nurseClaims.PrincipalType)
	assert.Equal(t, model.PrincipalPatient, patientClaims.PrincipalType)
}

func TestGenerateRejectsUnknownPrincipalType(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "booking-api")

	_, err := svc.Generate(uuid.New(), model.PrincipalType("admin"))
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, "booking-api")
	verifier := NewJWTService("secret-b", time.Hour, "booking-api")

	token, err := issuer.Generate(uuid.New(), model.PrincipalPatient)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, "booking-api")

	token, err := svc.Generate(uuid.New(), model.PrincipalPatient)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "booking-api")

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
