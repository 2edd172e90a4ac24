package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	pkgjwt "github.com/invorya/stockroom-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(*entity.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(id, hash string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
		}
	}
	return nil
}

type fakePasscodeRepo struct {
	byCode map[string]*entity.RegistrationPasscode
}

func newFakePasscodeRepo(codes ...*entity.RegistrationPasscode) *fakePasscodeRepo {
	f := &fakePasscodeRepo{byCode: map[string]*entity.RegistrationPasscode{}}
	for _, p := range codes {
		f.byCode[p.Code] = p
	}
	return f
}

func (f *fakePasscodeRepo) Create(p *entity.RegistrationPasscode) error {
	f.byCode[p.Code] = p
	return nil
}

func (f *fakePasscodeRepo) GetByCode(code string) (*entity.RegistrationPasscode, error) {
	return f.byCode[code], nil
}

func (f *fakePasscodeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	_, ok := f.byCode[code]
	return ok, nil
}

func (f *fakePasscodeRepo) MarkUsed(id, userID string) error {
	for _, p := range f.byCode {
		if p.ID == id {
			p.UsedBy = userID
			now := time.Now()
			p.UsedAt = &now
		}
	}
	return nil
}

func (f *fakePasscodeRepo) List(int, int) ([]entity.RegistrationPasscode, error) {
	return nil, nil
}

type fakeResetRepo struct {
	byToken map[string]*entity.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: map[string]*entity.PasswordReset{}}
}

func (f *fakeResetRepo) Create(r *entity.PasswordReset) error {
	f.byToken[r.Token] = r
	return nil
}

func (f *fakeResetRepo) GetByToken(token string) (*entity.PasswordReset, error) {
	return f.byToken[token], nil
}

func (f *fakeResetRepo) MarkUsed(id string) error {
	for _, r := range f.byToken {
		if r.ID == id {
			r.Used = true
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "unit-test-secret"

func staffPasscode() *entity.RegistrationPasscode {
	return &entity.RegistrationPasscode{
		ID:        "pc-1",
		Code:      "ABCD2345",
		Role:      entity.RoleStaff,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
}

func newAuthFixture(codes ...*entity.RegistrationPasscode) (*auth.AuthUseCase, *fakeUserRepo, *fakePasscodeRepo, *fakeResetRepo) {
	users := newFakeUserRepo()
	passcodes := newFakePasscodeRepo(codes...)
	resets := newFakeResetRepo()
	uc := auth.NewAuthUseCase(users, passcodes, resets, nil, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stockroom-test",
	}, "development")
	return uc, users, passcodes, resets
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, passcode, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Tester",
		Role:     role,
		Passcode: passcode,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ConPasscodeValido(t *testing.T) {
	uc, users, passcodes, _ := newAuthFixture(staffPasscode())

	out := register(t, uc, "Staff@Example.com", "password123", "abcd2345", entity.RoleStaff)

	assert.Equal(t, "staff@example.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Equal(t, "active", out.Status)

	stored, _ := users.GetByEmail("staff@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "la contraseña nunca se guarda en claro")

	consumed := passcodes.byCode["ABCD2345"]
	assert.Equal(t, stored.ID, consumed.UsedBy, "el passcode queda consumido por el usuario")
}

func TestRegister_PasscodeInexistente(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Role:     entity.RoleStaff,
		Passcode: "NOEXISTE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestRegister_PasscodeExpirado(t *testing.T) {
	expired := staffPasscode()
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	uc, _, _, _ := newAuthFixture(expired)

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Role:     entity.RoleStaff,
		Passcode: expired.Code,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestRegister_PasscodeYaUsado_NoSeReutiliza(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())

	register(t, uc, "uno@example.com", "password123", "ABCD2345", entity.RoleStaff)

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "dos@example.com",
		Password: "password123",
		Role:     entity.RoleStaff,
		Passcode: "ABCD2345",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestRegister_RolNoHabilitadoPorElPasscode(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
		Passcode: "ABCD2345",
	})
	assert.ErrorIs(t, err, domain.ErrPasscodeRoleMismatch)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, passcodes, _ := newAuthFixture(staffPasscode())

	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	otro := staffPasscode()
	otro.ID = "pc-2"
	otro.Code = "WXYZ6789"
	require.NoError(t, passcodes.Create(otro))

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Role:     entity.RoleStaff,
		Passcode: "WXYZ6789",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_ValidaEntrada(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())

	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"email sin arroba", dto.RegisterRequest{Email: "no-es-email", Password: "password123", Passcode: "ABCD2345"}},
		{"contraseña corta", dto.RegisterRequest{Email: "a@b.com", Password: "corta", Passcode: "ABCD2345"}},
		{"rol desconocido", dto.RegisterRequest{Email: "a@b.com", Password: "password123", Role: "superuser", Passcode: "ABCD2345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteJWTConRol(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())
	created := register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	out, err := uc.Login(dto.LoginRequest{Email: "A@B.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	_, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users, _, _ := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)
	users.byEmail["a@b.com"].Status = "suspended"

	_, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Password reset
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_RespuestaNeutra(t *testing.T) {
	uc, _, _, resets := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	conUsuario, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"})
	require.NoError(t, err)
	sinUsuario, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nadie@b.com"})
	require.NoError(t, err)

	assert.Equal(t, conUsuario.Message, sinUsuario.Message,
		"la respuesta no revela si el email existe")
	assert.Len(t, resets.byToken, 1, "solo el email existente genera token")
}

func TestForgotPassword_DevTokenSoloEnDevelopment(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	out, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.DevToken, "en development el token viaja en la respuesta")
}

func TestResetPassword_CicloCompleto(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	forgot, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"})
	require.NoError(t, err)
	require.NotEmpty(t, forgot.DevToken)

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: forgot.DevToken, NewPassword: "clave-nueva-99"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la contraseña vieja deja de servir")

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "clave-nueva-99"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestResetPassword_TokenNoReutilizable(t *testing.T) {
	uc, _, _, _ := newAuthFixture(staffPasscode())
	register(t, uc, "a@b.com", "password123", "ABCD2345", entity.RoleStaff)

	forgot, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "a@b.com"})
	require.NoError(t, err)

	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{Token: forgot.DevToken, NewPassword: "clave-nueva-99"}))

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: forgot.DevToken, NewPassword: "clave-nueva-00"})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestResetPassword_TokenDesconocido(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "no-existe", NewPassword: "clave-nueva-99"})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
