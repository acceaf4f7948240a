package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/identity"
)

func TestLocalProvider_RegisterYSignIn(t *testing.T) {
	p := identity.NewLocalProvider()
	ctx := context.Background()

	id, err := p.Register(ctx, "ana@example.com", "secreto123", "Ana")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.NotEmpty(t, id.ID, "el proveedor debe asignar un ID")
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "Ana", id.Name)

	signed, err := p.SignIn(ctx, "ana@example.com", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, id.ID, signed.ID, "sign-in debe devolver la misma identidad")
}

func TestLocalProvider_EmailNormalizado(t *testing.T) {
	p := identity.NewLocalProvider()
	ctx := context.Background()

	_, err := p.Register(ctx, "  Ana@Example.COM ", "secreto123", "Ana")
	require.NoError(t, err)

	// Mismo email con otra capitalización: duplicado.
	_, err = p.Register(ctx, "ana@example.com", "secreto123", "Otra Ana")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Y el sign-in funciona con cualquier capitalización.
	_, err = p.SignIn(ctx, "ANA@EXAMPLE.COM", "secreto123")
	assert.NoError(t, err)
}

func TestLocalProvider_PasswordCorto_Rechazado(t *testing.T) {
	p := identity.NewLocalProvider()
	_, err := p.Register(context.Background(), "ana@example.com", "corta", "Ana")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestLocalProvider_EmailVacio_Rechazado(t *testing.T) {
	p := identity.NewLocalProvider()
	_, err := p.Register(context.Background(), "   ", "secreto123", "Ana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocalProvider_PasswordIncorrecto(t *testing.T) {
	p := identity.NewLocalProvider()
	ctx := context.Background()

	_, err := p.Register(ctx, "ana@example.com", "secreto123", "Ana")
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "ana@example.com", "otraclave99")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nadie@example.com", "secreto123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"usuario inexistente debe dar el mismo error que password incorrecto")
}

func TestLocalProvider_CurrentUser(t *testing.T) {
	p := identity.NewLocalProvider()
	ctx := context.Background()

	id, err := p.Register(ctx, "ana@example.com", "secreto123", "Ana")
	require.NoError(t, err)

	got, err := p.CurrentUser(ctx, id.ID)
	require.NoError(t, err)
	assert.Equal(t, id.Email, got.Email)

	_, err = p.CurrentUser(ctx, "id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// SignOut es un no-op en el proveedor local.
	assert.NoError(t, p.SignOut(ctx, id.ID))
}
