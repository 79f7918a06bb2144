package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

type userTable struct {
	mu    sync.Mutex
	users map[uuid.UUID]db.User
}

func (m *userTable) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == arg.Email {
			return db.User{}, &pq.Error{Code: db.DuplicateEntry}
		}
	}
	u := db.User{ID: uuid.New(), Email: arg.Email, Name: arg.Name, HashedPassword: arg.HashedPassword, Role: arg.Role, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.users[u.ID] = u
	return u, nil
}

func (m *userTable) GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (m *userTable) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return db.User{}, sql.ErrNoRows
}

func (m *userTable) ListUsers(ctx context.Context) ([]db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []db.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *userTable) UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[arg.ID]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	if arg.Name.Valid {
		u.Name = arg.Name
	}
	m.users[arg.ID] = u
	return u, nil
}

func (m *userTable) UpdateUserRole(ctx context.Context, arg db.UpdateUserRoleParams) (db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[arg.ID]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	u.Role = arg.Role
	m.users[arg.ID] = u
	return u, nil
}

func (m *userTable) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

type sessionTable struct {
	mu       sync.Mutex
	sessions map[string]string
}

func (s *sessionTable) StoreSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sessionID
	return nil
}

func (s *sessionTable) ActiveSession(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[userID]
	if !ok {
		return "", services.ErrSessionNotFound
	}
	return id, nil
}

func (s *sessionTable) RevokeSession(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func newAccountsServer(t *testing.T) *Server {
	t.Helper()
	s, _ := newTestServer(t, nil)
	s.users = user_service.NewUserService(&userTable{users: map[uuid.UUID]db.User{}}, logging.NewTestLogger())
	s.sessions = &sessionTable{sessions: map[string]string{}}
	return s
}

func registerUser(t *testing.T, s *Server, email, role string) models.UserWithToken {
	t.Helper()
	rec := doRequest(s, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.UserWithToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp
}

func TestRegisterLoginProfileLogout(t *testing.T) {
	s := newAccountsServer(t)

	registered := registerUser(t, s, "ana@example.com", "")
	require.Equal(t, "USER", registered.User.Role)
	require.Equal(t, "ana@example.com", registered.User.Email)

	rec := doRequest(s, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var login models.UserWithToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	// The newer login replaces the session of the registration token.
	rec = doRequest(s, http.MethodGet, "/auth/profile", "Bearer "+registered.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Session expired", decodeError(t, rec).Message)

	rec = doRequest(s, http.MethodGet, "/auth/profile", "Bearer "+login.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.UserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, registered.User.ID, profile.ID)

	rec = doRequest(s, http.MethodPost, "/auth/logout", "Bearer "+login.AccessToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(s, http.MethodGet, "/auth/profile", "Bearer "+login.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAccountsServer(t)
	registerUser(t, s, "dup@example.com", "")

	rec := doRequest(s, http.MethodPost, "/auth/register", "", map[string]string{"email": "dup@example.com", "password": "secret123"})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Email already exists", decodeError(t, rec).Message)
}

func TestLoginBadCredentials(t *testing.T) {
	s := newAccountsServer(t)
	registerUser(t, s, "bob@example.com", "")

	rec := doRequest(s, http.MethodPost, "/auth/login", "", map[string]string{"email": "bob@example.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decodeError(t, rec).Message)

	rec = doRequest(s, http.MethodPost, "/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "secret123"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	s := newAccountsServer(t)

	rec := doRequest(s, http.MethodGet, "/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodGet, "/auth/profile", "Bearer not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersAdminOnly(t *testing.T) {
	s := newAccountsServer(t)
	user := registerUser(t, s, "user@example.com", "USER")
	admin := registerUser(t, s, "admin@example.com", "ADMIN")

	rec := doRequest(s, http.MethodGet, "/users", "Bearer "+user.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Forbidden - Admin access required", decodeError(t, rec).Message)

	rec = doRequest(s, http.MethodGet, "/users", "Bearer "+admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)

	rec = doRequest(s, http.MethodPatch, "/users/"+user.User.ID+"/role", "Bearer "+admin.AccessToken, map[string]string{"role": "ADMIN"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"role":"ADMIN"`)

	rec = doRequest(s, http.MethodDelete, "/users/"+user.User.ID, "Bearer "+admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	rec = doRequest(s, http.MethodGet, "/users/"+user.User.ID, "Bearer "+admin.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserSelfOnly(t *testing.T) {
	s := newAccountsServer(t)
	alice := registerUser(t, s, "alice@example.com", "")
	bob := registerUser(t, s, "bob@example.com", "")

	rec := doRequest(s, http.MethodPut, "/users/"+bob.User.ID, "Bearer "+alice.AccessToken, map[string]string{"name": "Mallory"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(s, http.MethodPut, "/users/"+alice.User.ID, "Bearer "+alice.AccessToken, map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Alice"`)
}

func TestDemotedAdminLosesAccess(t *testing.T) {
	s := newAccountsServer(t)
	root := registerUser(t, s, "root@example.com", "ADMIN")
	other := registerUser(t, s, "other@example.com", "ADMIN")

	rec := doRequest(s, http.MethodPatch, "/users/"+other.User.ID+"/role", "Bearer "+root.AccessToken, map[string]string{"role": "USER"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/users", "Bearer "+other.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Session expired", decodeError(t, rec).Message)

	rec = doRequest(s, http.MethodPost, "/auth/login", "", map[string]string{"email": "other@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var login models.UserWithToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.Equal(t, "USER", login.User.Role)

	rec = doRequest(s, http.MethodDelete, "/users/"+root.User.ID, "Bearer "+login.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStoredRoleIsAuthoritative(t *testing.T) {
	s := newAccountsServer(t)
	s.sessions = nil
	root := registerUser(t, s, "root@example.com", "ADMIN")
	other := registerUser(t, s, "other@example.com", "ADMIN")

	rec := doRequest(s, http.MethodPatch, "/users/"+other.User.ID+"/role", "Bearer "+root.AccessToken, map[string]string{"role": "USER"})
	require.Equal(t, http.StatusOK, rec.Code)

	// The token still claims ADMIN but the account no longer is one.
	rec = doRequest(s, http.MethodGet, "/users", "Bearer "+other.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(s, http.MethodDelete, "/users/"+root.User.ID, "Bearer "+other.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(s, http.MethodGet, "/users/"+root.User.ID+"/activity", "Bearer "+other.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeletedUserTokenIsRejected(t *testing.T) {
	s := newAccountsServer(t)
	s.sessions = nil
	root := registerUser(t, s, "root@example.com", "ADMIN")
	other := registerUser(t, s, "other@example.com", "ADMIN")

	rec := doRequest(s, http.MethodDelete, "/users/"+root.User.ID, "Bearer "+other.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/users", "Bearer "+root.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodGet, "/auth/profile", "Bearer "+root.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
