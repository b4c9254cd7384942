package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oliveiradev/estoque-api/internal/application/auth"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	pkgjwt "github.com/oliveiradev/estoque-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Email] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.users[email], nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.Email] = u; return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) Delete(id string) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "estoque-api-test"
	testEmail    = "admin@estoque.dev"
	testPassword = "senha-muito-segura"
)

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		testEmail: {
			ID:           "00000000-0000-0000-0000-000000000001",
			Name:         "Administrador",
			Email:        testEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// Credenciales correctas → token decodificable con el rol del usuario, sin senha en la respuesta.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe ser verificable con el mismo secret")
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "Administrador", name)
	assert.Equal(t, entity.RoleAdmin, role)

	assert.Equal(t, testEmail, out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// Password incorrecta y email desconocido producen exactamente el mismo error:
// el caller no puede distinguir qué credencial falló.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	uc := newAuthFixture(t)

	_, errPassword := uc.Login(dto.LoginRequest{Email: testEmail, Password: "incorrecta"})
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@estoque.dev", Password: testPassword})
	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)

	assert.Equal(t, errPassword, errEmail, "ambos fallos deben ser indistinguibles")
}
