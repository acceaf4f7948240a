package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Dataset
	ErrDatasetFetch = errors.New("no se pudo descargar el dataset")
	ErrDatasetParse = errors.New("el contenido del dataset es inválido")

	// Identidad / auth
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrWeakPassword        = errors.New("la contraseña es demasiado débil")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrIdentityUnavailable = errors.New("proveedor de identidad no disponible")

	// Genéricos
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)
