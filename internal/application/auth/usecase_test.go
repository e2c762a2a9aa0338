package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemanage/internal/application/auth"
	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/storemanage/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() (*auth.AuthUseCase, *memory.Store) {
	mem := memory.New()
	return auth.NewAuthUseCase(mem.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}), mem
}

func TestEnsureAdmin_SoloConTablaVacia(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	created, err := uc.EnsureAdmin(ctx, "admin@pms.local", "secreto123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "otro@pms.local", "secreto123")
	require.NoError(t, err)
	assert.False(t, created, "no se crea un segundo admin si ya hay usuarios")
}

func TestEnsureAdmin_PasswordCorta(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.EnsureAdmin(context.Background(), "admin@pms.local", "corta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenConRol(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	_, err := uc.EnsureAdmin(ctx, "admin@pms.local", "secreto123")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ADMIN@pms.local", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Errores(t *testing.T) {
	ctx := context.Background()
	uc, mem := newUseCase()
	_, err := uc.EnsureAdmin(ctx, "admin@pms.local", "secreto123")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@pms.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@pms.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	u, err := mem.Users().GetByEmail(ctx, "admin@pms.local")
	require.NoError(t, err)
	u.Status = entity.UserDisabled
	u.Email = "baja@pms.local"
	require.NoError(t, mem.Users().Create(ctx, u))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "baja@pms.local", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
