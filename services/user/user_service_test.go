package user_service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	users map[uuid.UUID]db.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[uuid.UUID]db.User{}}
}

func (m *memoryStore) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range m.users {
		if u.Email == email && id != except {
			return true
		}
	}
	return false
}

func (m *memoryStore) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	if m.emailTaken(arg.Email, uuid.Nil) {
		return db.User{}, &pq.Error{Code: db.DuplicateEntry}
	}
	u := db.User{
		ID:             uuid.New(),
		Email:          arg.Email,
		Name:           arg.Name,
		HashedPassword: arg.HashedPassword,
		Role:           arg.Role,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memoryStore) GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error) {
	u, ok := m.users[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (m *memoryStore) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return db.User{}, sql.ErrNoRows
}

func (m *memoryStore) ListUsers(ctx context.Context) ([]db.User, error) {
	out := []db.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryStore) UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error) {
	u, ok := m.users[arg.ID]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	if arg.Email.Valid {
		if m.emailTaken(arg.Email.String, arg.ID) {
			return db.User{}, &pq.Error{Code: db.DuplicateEntry}
		}
		u.Email = arg.Email.String
	}
	if arg.Name.Valid {
		u.Name = arg.Name
	}
	if arg.HashedPassword.Valid {
		u.HashedPassword = arg.HashedPassword.String
	}
	m.users[arg.ID] = u
	return u, nil
}

func (m *memoryStore) UpdateUserRole(ctx context.Context, arg db.UpdateUserRoleParams) (db.User, error) {
	u, ok := m.users[arg.ID]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	u.Role = arg.Role
	m.users[arg.ID] = u
	return u, nil
}

func (m *memoryStore) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

func newService() *UserService {
	return NewUserService(newMemoryStore(), logging.NewTestLogger())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, RoleUser, u.Role)
	require.NotEqual(t, "secret1", u.HashedPassword)

	got, err := svc.Authenticate(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "ana@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterParams{Email: "ana@example.com", Password: "secret2"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	_, err := newService().Register(context.Background(), RegisterParams{Email: "a@b.co", Password: "secret1", Role: "ROOT"})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateUserPermissions(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	owner, err := svc.Register(ctx, RegisterParams{Email: "owner@example.com", Password: "secret1"})
	require.NoError(t, err)
	other, err := svc.Register(ctx, RegisterParams{Email: "other@example.com", Password: "secret1"})
	require.NoError(t, err)

	name := "Owner"
	self := utils.TokenObject{UserID: owner.ID.String(), Role: RoleUser}

	updated, err := svc.UpdateUser(ctx, owner.ID.String(), UpdateParams{Name: &name}, self)
	require.NoError(t, err)
	require.Equal(t, "Owner", updated.Name.String)

	_, err = svc.UpdateUser(ctx, other.ID.String(), UpdateParams{Name: &name}, self)
	require.ErrorIs(t, err, ErrForbidden)

	admin := utils.TokenObject{UserID: uuid.NewString(), Role: RoleAdmin}
	taken := "owner@example.com"
	_, err = svc.UpdateUser(ctx, other.ID.String(), UpdateParams{Email: &taken}, admin)
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	password := "newsecret"
	_, err = svc.UpdateUser(ctx, u.ID.String(), UpdateParams{Password: &password}, utils.TokenObject{UserID: u.ID.String()})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "ana@example.com", "newsecret")
	require.NoError(t, err)
}

func TestChangeRoleAndDelete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	promoted, err := svc.ChangeRole(ctx, u.ID.String(), RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, promoted.Role)

	require.NoError(t, svc.DeleteUser(ctx, u.ID.String()))
	require.ErrorIs(t, svc.DeleteUser(ctx, u.ID.String()), ErrUserNotFound)

	_, err = svc.FetchUserByID(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrUserNotFound)
}
