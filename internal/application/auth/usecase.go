package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
	"github.com/tu-usuario/food-orders/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	countryRepo repository.CountryRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, countryRepo repository.CountryRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, countryRepo: countryRepo, jwtCfg: jwtCfg}
}

// Signup crea un usuario anclado a un país (el país no cambia nunca después),
// hashea el password con bcrypt y devuelve token + usuario, como el login.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	country, err := uc.countryRepo.GetByID(in.CountryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrNotFound // el país no existe
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CountryID:    in.CountryID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CountryID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user, country)}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	country, err := uc.countryRepo.GetByID(user.CountryID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CountryID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user, country)}, nil
}

func toUserResponse(u *entity.User, c *entity.Country) *dto.UserResponse {
	out := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CountryID: u.CountryID,
		CreatedAt: u.CreatedAt,
	}
	if c != nil {
		out.Country = &dto.CountryResponse{ID: c.ID, Name: c.Name, Code: c.Code}
	}
	return out
}
