package usecases

import (
	"time"

	"admin-server/auth"
	"admin-server/confs"
	"admin-server/entities"
	"admin-server/repositories"
)

type AuthUseCase struct {
	users  repositories.UserRepository
	logins repositories.LoginRecordRepository
	cfg    *confs.Config
}

func NewAuthUseCase(users repositories.UserRepository, logins repositories.LoginRecordRepository, cfg *confs.Config) *AuthUseCase {
	return &AuthUseCase{users: users, logins: logins, cfg: cfg}
}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Role     auth.Role
}

// Register creates a new account. The requested role is honored only when the
// acting user is an App_Admin; everyone else gets Viewer.
func (uc *AuthUseCase) Register(req RegisterRequest, actor *entities.User) (*entities.User, string, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, "", invalid("email, password and name are required")
	}
	if len(req.Password) < 6 {
		return nil, "", invalid("password must be at least 6 characters")
	}

	if existing, err := uc.users.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, "", invalid("user with this email already exists")
	}

	role := auth.RoleViewer
	if req.Role != "" && actor != nil && actor.Role == auth.RoleAppAdmin {
		if !auth.IsValidRole(req.Role) {
			return nil, "", invalid("invalid role")
		}
		role = req.Role
	}

	// The very first account bootstraps the system and becomes App_Admin.
	if _, total, err := uc.users.List(repositories.UserQuery{Page: 1, Limit: 1}); err == nil && total == 0 {
		role = auth.RoleAppAdmin
	}

	user := &entities.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, "", err
	}
	if err := uc.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, uc.cfg.JWTSecret, uc.cfg.JWTExpiresIn)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials, refreshes last_login, appends a login record
// and issues a token.
func (uc *AuthUseCase) Login(email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", invalid("email and password are required")
	}

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, "", unauthorized("invalid email or password")
	}
	if !user.IsActive {
		return nil, "", unauthorized("your account has been deactivated, please contact an administrator")
	}
	if !user.ComparePassword(password) {
		return nil, "", unauthorized("invalid email or password")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := uc.users.Update(user); err != nil {
		return nil, "", err
	}

	if err := uc.logins.Create(&entities.LoginRecord{UserID: user.ID, Timestamp: now}); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, uc.cfg.JWTSecret, uc.cfg.JWTExpiresIn)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me reloads the authenticated user.
func (uc *AuthUseCase) Me(userID string) (*entities.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, notFound("user")
	}
	return user, nil
}

// UpdateProfile changes the user's own name and/or email.
func (uc *AuthUseCase) UpdateProfile(user *entities.User, name, email string) (*entities.User, error) {
	if email != "" && email != user.Email {
		if existing, err := uc.users.GetByEmail(email); err == nil && existing.ID != user.ID {
			return nil, invalid("email is already in use")
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password, stores the new one and issues
// a fresh token so the caller stays logged in past the stale-password check.
func (uc *AuthUseCase) UpdatePassword(user *entities.User, currentPassword, newPassword string) (string, error) {
	if !user.ComparePassword(currentPassword) {
		return "", unauthorized("current password is incorrect")
	}
	if len(newPassword) < 6 {
		return "", invalid("password must be at least 6 characters")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return "", err
	}
	if err := uc.users.Update(user); err != nil {
		return "", err
	}
	return auth.GenerateToken(user.ID, uc.cfg.JWTSecret, uc.cfg.JWTExpiresIn)
}
