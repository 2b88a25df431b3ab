package usecase

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

// RoleOperator rol del único operador de la tienda.
const RoleOperator = "operator"

// AuthConfig credenciales del operador y configuración de tokens.
type AuthConfig struct {
	Username     string
	PasswordHash string // bcrypt
	Secret       string
	ExpMinutes   int
	Issuer       string
}

// AuthUseCase login del operador configurado.
type AuthUseCase struct {
	cfg AuthConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg AuthConfig) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login verifica usuario/password (bcrypt) y genera un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.cfg.Username == "" || uc.cfg.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.cfg.Username)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Username, RoleOperator, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.cfg.ExpMinutes * 60}, nil
}
