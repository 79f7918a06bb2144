package user_service

import (
	"context"
	"database/sql"
	"errors"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type userStore interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	ListUsers(ctx context.Context) ([]db.User, error)
	UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error)
	UpdateUserRole(ctx context.Context, arg db.UpdateUserRoleParams) (db.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (int64, error)
}

type UserService struct {
	store  userStore
	logger *logging.Logger
}

func NewUserService(store userStore, logger *logging.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

type RegisterParams struct {
	Email    string
	Password string
	Name     *string
	Role     string
}

// UpdateParams carries optional changes. A nil field is left untouched.
type UpdateParams struct {
	Email    *string
	Name     *string
	Password *string
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func (u *UserService) Register(ctx context.Context, arg RegisterParams) (*db.User, error) {
	role := arg.Role
	if role == "" {
		role = RoleUser
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashed, err := utils.GenerateHashValue(arg.Password)
	if err != nil {
		return nil, err
	}

	newUser, err := u.store.CreateUser(ctx, db.CreateUserParams{
		Email:          arg.Email,
		Name:           toNullString(arg.Name),
		HashedPassword: hashed,
		Role:           role,
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, NewUserError(ErrUserAlreadyExists, "", err)
		}
		return nil, err
	}

	return &newUser, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (u *UserService) Authenticate(ctx context.Context, email, password string) (*db.User, error) {
	dbUser, err := u.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.VerifyHashValue(password, dbUser.HashedPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &dbUser, nil
}

func (u *UserService) FetchUserByID(ctx context.Context, id string) (*db.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewUserError(ErrUserNotFound, id)
	}

	dbUser, err := u.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewUserError(ErrUserNotFound, id)
		}
		return nil, err
	}
	return &dbUser, nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]db.User, error) {
	return u.store.ListUsers(ctx)
}

// UpdateUser applies changes on behalf of actor. Admins may edit anyone,
// everyone else only themselves.
func (u *UserService) UpdateUser(ctx context.Context, id string, arg UpdateParams, actor utils.TokenObject) (*db.User, error) {
	if actor.Role != RoleAdmin && actor.UserID != id {
		return nil, NewUserError(ErrForbidden, actor.UserID)
	}

	existing, err := u.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	params := db.UpdateUserParams{
		ID:    existing.ID,
		Email: toNullString(arg.Email),
		Name:  toNullString(arg.Name),
	}
	if arg.Password != nil {
		hashed, err := utils.GenerateHashValue(*arg.Password)
		if err != nil {
			return nil, err
		}
		params.HashedPassword = sql.NullString{String: hashed, Valid: true}
	}

	updated, err := u.store.UpdateUser(ctx, params)
	if err != nil {
		if isDuplicate(err) {
			return nil, NewUserError(ErrUserAlreadyExists, id, err)
		}
		return nil, err
	}
	return &updated, nil
}

func (u *UserService) ChangeRole(ctx context.Context, id, role string) (*db.User, error) {
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := u.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := u.store.UpdateUserRole(ctx, db.UpdateUserRoleParams{ID: existing.ID, Role: role})
	if err != nil {
		return nil, err
	}
	u.logger.WithField("user_id", id).Infof("role changed to %s", role)
	return &updated, nil
}

func (u *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return NewUserError(ErrUserNotFound, id)
	}

	rows, err := u.store.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return NewUserError(ErrUserNotFound, id)
	}
	return nil
}

func isDuplicate(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == db.DuplicateEntry
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
