package services

import (
	"context"
	"testing"

	"tunzacare_backend/internal/auth"
	"tunzacare_backend/internal/config"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Token generation reads the JWT config; supply one without a file.
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newAuthFixture() (*fakeUserRepo, *fakeCaregiverRepo, AuthService) {
	userRepo := newFakeUserRepo()
	caregiverRepo := newFakeCaregiverRepo()
	svc := NewAuthService(userRepo, caregiverRepo, &fakeTxRunner{})
	return userRepo, caregiverRepo, svc
}

func registerReq(email, role string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Amina",
		LastName:  "Otieno",
		Email:     email,
		Phone:     "0712345678",
		IDNumber:  "ID-" + email,
		Password:  "s3cret-pass",
		Role:      role,
		Location:  "Westlands",
		County:    "Nairobi",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, nil, registerReq("amina@example.com", "caregiver"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleCaregiver, resp.User.Role)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "caregiver", claims.Role)

	login, err := svc.Login(ctx, nil, dto.LoginRequest{
		Email: "amina@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterCaregiverCreatesEmptyProfile(t *testing.T) {
	_, caregiverRepo, svc := newAuthFixture()

	resp, err := svc.Register(context.Background(), nil, registerReq("grace@example.com", "caregiver"))
	require.NoError(t, err)

	profile, err := caregiverRepo.FindProfileByUserID(nil, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Westlands", profile.Location)
	assert.Equal(t, "Nairobi", profile.County)
	assert.Equal(t, models.SpecializationGeneral, profile.Specialization)
	assert.Equal(t, models.VerificationStatusPending, profile.VerificationStatus)
	assert.Equal(t, models.SubscriptionStatusNone, profile.SubscriptionStatus)
	assert.True(t, profile.IsActive)
	assert.Zero(t, profile.Rating)
}

func TestRegisterClientCreatesNoProfile(t *testing.T) {
	_, caregiverRepo, svc := newAuthFixture()

	resp, err := svc.Register(context.Background(), nil, registerReq("client@example.com", "client"))
	require.NoError(t, err)

	_, err = caregiverRepo.FindProfileByUserID(nil, resp.User.ID)
	assert.ErrorIs(t, err, repositories.ErrCaregiverNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, registerReq("dup@example.com", "client"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, nil, registerReq("dup@example.com", "client"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), nil, registerReq("root@example.com", "admin"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	_, _, svc := newAuthFixture()

	req := registerReq("short@example.com", "client")
	req.Password = "short"
	_, err := svc.Register(context.Background(), nil, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestLoginFailures(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, nil, registerReq("user@example.com", "client"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, nil, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, nil, dto.LoginRequest{Email: "user@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Deactivated accounts cannot log in even with the right password.
	require.NoError(t, userRepo.SetUserActive(nil, resp.User.ID, false))
	_, err = svc.Login(ctx, nil, dto.LoginRequest{Email: "user@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDeactivated)
}
