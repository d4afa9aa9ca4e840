package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/food-orders/internal/application/auth"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/food-orders/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type fakeCountryRepo struct {
	byID map[string]*entity.Country
}

var _ repository.CountryRepository = (*fakeCountryRepo)(nil)

func (r *fakeCountryRepo) GetByID(id string) (*entity.Country, error) { return r.byID[id], nil }

func (r *fakeCountryRepo) List() ([]*entity.Country, error) {
	var out []*entity.Country
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

const testCountryID = "country-india"

func newAuthFixture() (*fakeUserRepo, *auth.AuthUseCase) {
	users := &fakeUserRepo{byEmail: make(map[string]*entity.User)}
	countries := &fakeCountryRepo{byID: map[string]*entity.Country{
		testCountryID: {ID: testCountryID, Name: "India", Code: "IN"},
	}}
	uc := auth.NewAuthUseCase(users, countries, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "food-orders-test",
	})
	return users, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaUsuarioYDevuelveToken(t *testing.T) {
	users, uc := newAuthFixture()

	out, err := uc.Signup(dto.SignupRequest{
		Email:     "member@india.com",
		Password:  "password123",
		Name:      "Member India",
		CountryID: testCountryID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleMember, out.User.Role, "sin rol explícito se asigna MEMBER")
	assert.Equal(t, testCountryID, out.User.CountryID)
	require.NotNil(t, out.User.Country)
	assert.Equal(t, "IN", out.User.Country.Code)

	// El token carga identidad, país y rol.
	userID, countryID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, testCountryID, countryID)
	assert.Equal(t, entity.RoleMember, role)

	// El password nunca se guarda en claro.
	stored := users.byEmail["member@india.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestSignup_EmailDuplicado_Conflicto(t *testing.T) {
	_, uc := newAuthFixture()
	in := dto.SignupRequest{Email: "admin@india.com", Password: "password123", CountryID: testCountryID}

	_, err := uc.Signup(in)
	require.NoError(t, err)

	_, err = uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_PaisInexistente_NotFound(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Signup(dto.SignupRequest{Email: "a@b.com", Password: "password123", CountryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignup_RolInvalido_Rechazado(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Signup(dto.SignupRequest{
		Email:     "a@b.com",
		Password:  "password123",
		Role:      "SUPERUSER",
		CountryID: testCountryID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignup_RolExplicito_SeRespeta(t *testing.T) {
	_, uc := newAuthFixture()

	out, err := uc.Signup(dto.SignupRequest{
		Email:     "admin@india.com",
		Password:  "password123",
		Role:      entity.RoleAdmin,
		CountryID: testCountryID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{Email: "member@india.com", Password: "password123", CountryID: testCountryID})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "member@india.com", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "member@india.com", out.User.Email)
}

func TestLogin_UsuarioInexistente_Error(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@india.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Signup(dto.SignupRequest{Email: "member@india.com", Password: "password123", CountryID: testCountryID})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "member@india.com", Password: "password-mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
