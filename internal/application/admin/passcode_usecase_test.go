package admin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/admin"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
)

type fakePasscodeRepo struct {
	created []entity.RegistrationPasscode
}

func (f *fakePasscodeRepo) Create(p *entity.RegistrationPasscode) error {
	f.created = append(f.created, *p)
	return nil
}
func (f *fakePasscodeRepo) GetByCode(string) (*entity.RegistrationPasscode, error) {
	return nil, nil
}
func (f *fakePasscodeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, p := range f.created {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakePasscodeRepo) MarkUsed(string, string) error { return nil }
func (f *fakePasscodeRepo) List(limit, offset int) ([]entity.RegistrationPasscode, error) {
	return f.created, nil
}

func TestGenerate_LoteParaStaff(t *testing.T) {
	repo := &fakePasscodeRepo{}
	uc := admin.NewPasscodeUseCase(repo, nil)

	out, err := uc.Generate(context.Background(), "admin1", dto.GeneratePasscodesRequest{
		Count: 5, Role: entity.RoleStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Requested)
	assert.Equal(t, 5, out.Generated)
	require.Len(t, repo.created, 5)
	for _, p := range repo.created {
		assert.Equal(t, entity.RoleStaff, p.Role)
		assert.Len(t, p.Code, 8)
		assert.True(t, p.ExpiresAt.After(time.Now().Add(29*24*time.Hour)), "expiración por defecto de 30 días")
	}
}

func TestGenerate_ValidaEntrada(t *testing.T) {
	uc := admin.NewPasscodeUseCase(&fakePasscodeRepo{}, nil)
	ctx := context.Background()

	cases := []dto.GeneratePasscodesRequest{
		{Count: 0, Role: entity.RoleStaff},
		{Count: 51, Role: entity.RoleStaff},
		{Count: 3, Role: "superuser"},
	}
	for _, in := range cases {
		_, err := uc.Generate(ctx, "admin1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v", in)
	}
}

func TestList_MapeaUso(t *testing.T) {
	now := time.Now()
	repo := &fakePasscodeRepo{created: []entity.RegistrationPasscode{
		{ID: "1", Code: "ABCD2345", Role: entity.RoleAdmin, UsedBy: "u9", UsedAt: &now},
		{ID: "2", Code: "EFGH6789", Role: entity.RoleStaff},
	}}
	uc := admin.NewPasscodeUseCase(repo, nil)

	out, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Used)
	assert.False(t, out[1].Used)
}
