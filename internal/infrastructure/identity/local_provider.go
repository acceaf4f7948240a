// Package identity implementa el puerto ports.IdentityProvider: un proveedor
// REST contra el servicio de credenciales externo y un proveedor local en
// memoria para desarrollo y tests.
package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sales-dashboard-api/internal/application/ports"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

const minPasswordLen = 8

// LocalProvider proveedor de identidad en memoria con contraseñas bcrypt.
// Pensado para desarrollo: un reinicio pierde los registros; el colaborador
// real es el proveedor REST.
type LocalProvider struct {
	mu    sync.RWMutex
	users map[string]*entity.User // clave: email en minúsculas
	byID  map[string]*entity.User
}

// NewLocalProvider construye el proveedor vacío.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		users: make(map[string]*entity.User),
		byID:  make(map[string]*entity.User),
	}
}

// Register crea el usuario: hashea el password con bcrypt y lo guarda en memoria.
func (p *LocalProvider) Register(_ context.Context, email, password, name string) (*ports.Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.users[email]; exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	p.users[email] = u
	p.byID[u.ID] = u

	return toIdentity(u), nil
}

// SignIn verifica email/password contra el hash almacenado.
func (p *LocalProvider) SignIn(_ context.Context, email, password string) (*ports.Identity, error) {
	p.mu.RLock()
	u, ok := p.users[normalizeEmail(email)]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return toIdentity(u), nil
}

// SignOut no mantiene sesión en el proveedor local; siempre tiene éxito.
func (p *LocalProvider) SignOut(_ context.Context, _ string) error { return nil }

// CurrentUser busca por ID.
func (p *LocalProvider) CurrentUser(_ context.Context, userID string) (*ports.Identity, error) {
	p.mu.RLock()
	u, ok := p.byID[userID]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return toIdentity(u), nil
}

func toIdentity(u *entity.User) *ports.Identity {
	return &ports.Identity{ID: u.ID, Email: u.Email, Name: u.Name}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
