package entities

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admin-server/auth"
)

type User struct {
	ID                string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email             string         `json:"email" gorm:"uniqueIndex;not null"`
	Password          string         `json:"-" gorm:"not null"`
	Name              string         `json:"name" gorm:"not null;type:varchar(100)"`
	Role              auth.Role      `json:"role" gorm:"index;type:varchar(32);default:Viewer"`
	IsActive          bool           `json:"is_active" gorm:"default:true"`
	LastLogin         *time.Time     `json:"last_login,omitempty"`
	PasswordChangedAt *time.Time     `json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = auth.RoleViewer
	}
	return nil
}

// SetPassword stores a bcrypt hash of the plaintext password. When the user
// already exists, PasswordChangedAt is backdated one second so a token issued
// in the same instant still validates.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	if u.ID != "" {
		changed := time.Now().Add(-time.Second)
		u.PasswordChangedAt = &changed
	}
	return nil
}

// ComparePassword checks a candidate password against the stored hash.
func (u *User) ComparePassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}

// ChangedPasswordAfter reports whether the password changed after the given
// token issue time (unix seconds).
func (u *User) ChangedPasswordAfter(issuedAt int64) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.Unix() > issuedAt
}
