package services

import (
	"context"

	"tunzacare_backend/internal/auth"
	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDTO, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	tx            repositories.TxRunner
}

func NewAuthService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	tx repositories.TxRunner,
) AuthService {
	return &authService{userRepo: userRepo, caregiverRepo: caregiverRepo, tx: tx}
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role == models.UserRoleAdmin {
		// Admin accounts are seeded at startup, never self-registered.
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		IDNumber:     req.IDNumber,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	// Caregiver signups get their empty profile in the same transaction,
	// so a failed profile insert rolls the account back too.
	err = s.tx.WithinTx(db, func(tx *gorm.DB) error {
		if err := s.userRepo.CreateUser(tx, user); err != nil {
			if apperrors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		if role != models.UserRoleCaregiver {
			return nil
		}
		profile := &models.CaregiverProfile{
			UserID:             user.ID,
			Location:           req.Location,
			County:             req.County,
			Certifications:     encodeCertifications(nil),
			Specialization:     models.SpecializationGeneral,
			Availability:       models.AvailabilityFullTime,
			VerificationStatus: models.VerificationStatusPending,
			SubscriptionStatus: models.SubscriptionStatusNone,
			IsActive:           true,
		}
		if err := s.caregiverRepo.CreateProfile(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID); err != nil {
		logger.CtxWarn(ctx, "failed to record last login", "user_id", user.ID, "error", err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *authService) GetUser(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	u := dto.NewUserDTO(user)
	return &u, nil
}
