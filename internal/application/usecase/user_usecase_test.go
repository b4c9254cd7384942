package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) Delete(id string) error { delete(f.users, id); return nil }

func newUserFixture() (*usecase.UserUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	return usecase.NewUserUseCase(repo), repo
}

func TestUserCreate_HasheaPassword(t *testing.T) {
	uc, repo := newUserFixture()

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@estoque.dev",
		Password: "senha-segura-123",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-segura-123", stored.PasswordHash,
		"la senha nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("senha-segura-123")))
}

// La respuesta serializada no debe exponer la senha ni su hash bajo ningún nombre.
func TestUserResponse_NoExponeSenha(t *testing.T) {
	uc, _ := newUserFixture()

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@estoque.dev",
		Password: "senha-segura-123",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "senha")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hash")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newUserFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@estoque.dev", Password: "senha-segura-123", Role: entity.RoleUser,
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{
		Name: "Otra Ana", Email: "ana@estoque.dev", Password: "otra-senha-456", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc, _ := newUserFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@estoque.dev", Password: "senha-segura-123", Role: "SUPERADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_RehasheaSenhaNueva(t *testing.T) {
	uc, repo := newUserFixture()

	created, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@estoque.dev", Password: "senha-original-1", Role: entity.RoleUser,
	})
	require.NoError(t, err)
	oldHash := repo.users[created.ID].PasswordHash

	newPassword := "senha-nueva-9"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	newHash := repo.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(newPassword)))
}

func TestEnsureAdmin_SiembraUnaSolaVez(t *testing.T) {
	uc, repo := newUserFixture()

	created, err := uc.EnsureAdmin("Administrador", "admin@estoque.dev", "senha-admin-123")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.users, 1)
	for _, u := range repo.users {
		assert.Equal(t, entity.RoleAdmin, u.Role)
	}

	// Segunda llamada: idempotente
	created, err = uc.EnsureAdmin("Administrador", "admin@estoque.dev", "senha-admin-123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.users, 1)
}

func TestEnsureAdmin_SinCredenciales_NoHaceNada(t *testing.T) {
	uc, repo := newUserFixture()

	created, err := uc.EnsureAdmin("Administrador", "", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.users)
}
