// Package auth contiene los casos de uso de registro e inicio de sesión.
// Las credenciales viven en el proveedor de identidad externo; aquí solo se
// orquesta la llamada y se emite el token de sesión propio.
package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/application/ports"
	"github.com/jhoicas/sales-dashboard-api/pkg/jwt"
)

// JWTConfig configuración para la generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro, login, logout y usuario actual a través del proveedor.
type AuthUseCase struct {
	provider ports.IdentityProvider
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider ports.IdentityProvider, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{provider: provider, jwtCfg: jwtCfg}
}

// Register crea la cuenta en el proveedor. El nombre es opcional; si viene
// vacío se usa la parte local del email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = emailLocalPart(in.Email)
	}
	identity, err := uc.provider.Register(ctx, strings.TrimSpace(in.Email), in.Password, name)
	if err != nil {
		return nil, err
	}
	return toUserResponse(identity), nil
}

// Login verifica las credenciales contra el proveedor y emite el token de
// sesión propio del servicio (el proveedor nunca expone los suyos).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.provider.SignIn(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.ID, identity.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(identity),
	}, nil
}

// Logout invalida la referencia local de sesión en el proveedor.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	return uc.provider.SignOut(ctx, userID)
}

// CurrentUser devuelve la identidad del usuario autenticado.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	identity, err := uc.provider.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(identity), nil
}

func toUserResponse(id *ports.Identity) *dto.UserResponse {
	if id == nil {
		return nil
	}
	return &dto.UserResponse{ID: id.ID, Email: id.Email, Name: id.Name}
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
