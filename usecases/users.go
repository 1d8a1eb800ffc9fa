package usecases

import (
	"admin-server/auth"
	"admin-server/entities"
	"admin-server/repositories"
)

type UserUseCase struct {
	users repositories.UserRepository
}

func NewUserUseCase(users repositories.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (uc *UserUseCase) List(q repositories.UserQuery) ([]entities.User, Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	users, total, err := uc.users.List(q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return users, paginate(q.Page, q.Limit, total), nil
}

func (uc *UserUseCase) Get(id string) (*entities.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, notFound("user")
	}
	return user, nil
}

type CreateUserRequest struct {
	Email    string
	Password string
	Name     string
	Role     auth.Role
}

func (uc *UserUseCase) Create(req CreateUserRequest) (*entities.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, invalid("email, password and name are required")
	}
	if len(req.Password) < 6 {
		return nil, invalid("password must be at least 6 characters")
	}
	if existing, err := uc.users.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, invalid("user with this email already exists")
	}

	role := req.Role
	if role == "" {
		role = auth.RoleViewer
	}
	if !auth.IsValidRole(role) {
		return nil, invalid("invalid role")
	}

	user := &entities.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserRequest struct {
	Name     *string
	Email    *string
	Role     *auth.Role
	IsActive *bool
}

func (uc *UserUseCase) Update(id string, req UpdateUserRequest) (*entities.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, notFound("user")
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := uc.users.GetByEmail(*req.Email); err == nil && existing.ID != id {
			return nil, invalid("email is already in use")
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !auth.IsValidRole(*req.Role) {
			return nil, invalid("invalid role")
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Deleting your own account is blocked.
func (uc *UserUseCase) Delete(id, actorID string) error {
	if id == actorID {
		return invalid("you cannot delete your own account")
	}
	if _, err := uc.users.GetByID(id); err != nil {
		return notFound("user")
	}
	return uc.users.Delete(id)
}

// UpdateRole changes a user's role. Changing your own role is blocked.
func (uc *UserUseCase) UpdateRole(id string, role auth.Role, actorID string) (*entities.User, error) {
	if !auth.IsValidRole(role) {
		return nil, invalid("invalid role")
	}
	if id == actorID {
		return nil, invalid("you cannot change your own role")
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, notFound("user")
	}
	user.Role = role
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleStatus flips is_active. Deactivating your own account is blocked.
func (uc *UserUseCase) ToggleStatus(id, actorID string) (*entities.User, error) {
	if id == actorID {
		return nil, invalid("you cannot deactivate your own account")
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, notFound("user")
	}
	user.IsActive = !user.IsActive
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
