package ports

import "context"

// Identity datos mínimos que el proveedor de credenciales expone de un usuario.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// IdentityProvider capacidad externa de registro y autenticación de
// credenciales. El servicio no almacena contraseñas ni sesiones del proveedor;
// cualquier implementación concreta (servicio REST, memoria en desarrollo) se
// enchufa detrás de esta interfaz y los casos de uso nunca dependen de sus
// internos.
//
// Errores esperados: domain.ErrEmailAlreadyExists, domain.ErrWeakPassword,
// domain.ErrInvalidCredentials, domain.ErrUserNotFound y
// domain.ErrIdentityUnavailable cuando el proveedor no responde.
type IdentityProvider interface {
	// Register crea la cuenta en el proveedor.
	Register(ctx context.Context, email, password, name string) (*Identity, error)

	// SignIn verifica las credenciales y devuelve la identidad.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// SignOut invalida la referencia local de sesión del proveedor.
	SignOut(ctx context.Context, userID string) error

	// CurrentUser devuelve la identidad asociada al usuario, si el proveedor
	// aún la reconoce.
	CurrentUser(ctx context.Context, userID string) (*Identity, error)
}
