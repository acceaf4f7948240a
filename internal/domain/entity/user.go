package entity

import "time"

// User identidad devuelta por el proveedor de credenciales.
// El servicio no persiste usuarios; el proveedor es el dueño de la cuenta.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // solo lo usa el proveedor local; nunca viaja en respuestas
	CreatedAt    time.Time
}
