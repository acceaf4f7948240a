package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/sales-dashboard-api/internal/application/ports"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

// RESTProvider cliente del servicio de credenciales externo (API estilo
// Identity Toolkit: accounts:signUp / accounts:signInWithPassword).
//
// El servicio no guarda credenciales ni tokens del proveedor; solo conserva
// la referencia local de las identidades vistas en la sesión del proceso,
// que SignOut invalida.
type RESTProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client

	mu   sync.RWMutex
	seen map[string]*ports.Identity // referencia local de sesión, clave: ID
}

// NewRESTProvider construye el cliente. baseURL sin slash final,
// ej: https://identitytoolkit.example.com/v1.
func NewRESTProvider(baseURL, apiKey string, timeout time.Duration) *RESTProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		seen:    make(map[string]*ports.Identity),
	}
}

// ── Formato de la API del proveedor ──────────────────────────────────────────

type accountRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ── IdentityProvider ─────────────────────────────────────────────────────────

// Register da de alta la cuenta en el proveedor (accounts:signUp).
func (p *RESTProvider) Register(ctx context.Context, email, password, name string) (*ports.Identity, error) {
	out, err := p.call(ctx, "accounts:signUp", accountRequest{
		Email:       email,
		Password:    password,
		DisplayName: name,
	})
	if err != nil {
		return nil, err
	}
	id := &ports.Identity{ID: out.LocalID, Email: out.Email, Name: firstNonEmpty(out.DisplayName, name)}
	p.remember(id)
	return id, nil
}

// SignIn verifica credenciales (accounts:signInWithPassword).
func (p *RESTProvider) SignIn(ctx context.Context, email, password string) (*ports.Identity, error) {
	out, err := p.call(ctx, "accounts:signInWithPassword", accountRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	id := &ports.Identity{ID: out.LocalID, Email: out.Email, Name: out.DisplayName}
	p.remember(id)
	return id, nil
}

// SignOut descarta la referencia local; el proveedor es stateless para nosotros.
func (p *RESTProvider) SignOut(_ context.Context, userID string) error {
	p.mu.Lock()
	delete(p.seen, userID)
	p.mu.Unlock()
	return nil
}

// CurrentUser responde desde la referencia local de sesión.
func (p *RESTProvider) CurrentUser(_ context.Context, userID string) (*ports.Identity, error) {
	p.mu.RLock()
	id, ok := p.seen[userID]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return id, nil
}

// ── Internos ─────────────────────────────────────────────────────────────────

func (p *RESTProvider) remember(id *ports.Identity) {
	p.mu.Lock()
	p.seen[id.ID] = id
	p.mu.Unlock()
}

func (p *RESTProvider) call(ctx context.Context, endpoint string, in accountRequest) (*accountResponse, error) {
	in.ReturnSecureToken = false
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var out accountResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrIdentityUnavailable, err)
		}
		return &out, nil
	}

	var pe providerError
	_ = json.NewDecoder(resp.Body).Decode(&pe)
	return nil, mapProviderError(resp.StatusCode, pe.Error.Message)
}

// mapProviderError traduce los códigos del proveedor a errores de dominio.
func mapProviderError(status int, message string) error {
	switch {
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		return domain.ErrEmailAlreadyExists
	case strings.HasPrefix(message, "WEAK_PASSWORD"):
		return domain.ErrWeakPassword
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"):
		return domain.ErrInvalidCredentials
	case status >= 500:
		return fmt.Errorf("%w: status %d", domain.ErrIdentityUnavailable, status)
	default:
		return fmt.Errorf("%w: proveedor respondió %q (status %d)", domain.ErrInvalidCredentials, message, status)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
