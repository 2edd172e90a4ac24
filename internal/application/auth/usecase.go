// Package auth casos de uso de autenticación: registro con passcode,
// login y restablecimiento de contraseña.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/jwt"
)

const (
	minPasswordLen  = 8
	resetTokenTTL   = time.Hour
	neutralResetMsg = "If the email exists, a reset token has been issued"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	passcodeRepo repository.PasscodeRepository
	resetRepo    repository.PasswordResetRepository
	activityRepo repository.ActivityLogRepository
	jwtCfg       JWTConfig
	appEnv       string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	passcodeRepo repository.PasscodeRepository,
	resetRepo repository.PasswordResetRepository,
	activityRepo repository.ActivityLogRepository,
	jwtCfg JWTConfig,
	appEnv string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		passcodeRepo: passcodeRepo,
		resetRepo:    resetRepo,
		activityRepo: activityRepo,
		jwtCfg:       jwtCfg,
		appEnv:       appEnv,
	}
}

// Register crea un usuario. El rol solicitado debe estar habilitado por un
// passcode vigente; el passcode se consume al registrarse.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validEmail(email) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}

	pass, err := uc.passcodeRepo.GetByCode(strings.ToUpper(strings.TrimSpace(in.Passcode)))
	if err != nil {
		return nil, err
	}
	if pass == nil || !pass.Usable(time.Now()) {
		return nil, domain.ErrInvalidPasscode
	}
	if pass.Role != role {
		return nil, domain.ErrPasscodeRoleMismatch
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := uc.passcodeRepo.MarkUsed(pass.ID, user.ID); err != nil {
		return nil, err
	}
	uc.logActivity(user.ID, "register", "role="+role)
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.logActivity(user.ID, "login", "")
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ForgotPassword emite un token de restablecimiento de un solo uso.
// La respuesta es neutra exista o no el email. En development el token
// viaja en la respuesta para pruebas manuales (en producción saldría por
// correo, fuera del alcance de este servicio).
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	resp := &dto.ForgotPasswordResponse{Message: neutralResetMsg}

	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return resp, nil
	}

	now := time.Now()
	reset := &entity.PasswordReset{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}
	if err := uc.resetRepo.Create(reset); err != nil {
		return nil, err
	}
	if uc.appEnv == "development" {
		resp.DevToken = reset.Token
	}
	return resp, nil
}

// ResetPassword consume el token y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	reset, err := uc.resetRepo.GetByToken(in.Token)
	if err != nil {
		return err
	}
	if reset == nil || !reset.Usable(time.Now()) {
		return domain.ErrTokenExpired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(reset.UserID, string(hash)); err != nil {
		return err
	}
	if err := uc.resetRepo.MarkUsed(reset.ID); err != nil {
		return err
	}
	uc.logActivity(reset.UserID, "password_reset", "")
	return nil
}

// logActivity registra la acción sin romper el flujo principal si falla.
func (uc *AuthUseCase) logActivity(userID, action, detail string) {
	if uc.activityRepo == nil {
		return
	}
	_ = uc.activityRepo.Create(&entity.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && strings.Contains(s[at:], ".")
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
