package usecases

import (
	"time"

	"admin-server/repositories"
)

type LoginTrackerUseCase struct {
	logins repositories.LoginRecordRepository
}

func NewLoginTrackerUseCase(logins repositories.LoginRecordRepository) *LoginTrackerUseCase {
	return &LoginTrackerUseCase{logins: logins}
}

// LoginUser is the slice of user details shown on the login dashboard.
type LoginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginEntry is a login record joined with its user's details for the
// dashboard. User is null when the account was removed since the login.
type LoginEntry struct {
	ID           string     `json:"id"`
	User         *LoginUser `json:"user"`
	TimeLoggedIn time.Time  `json:"time_logged_in"`
}

func (uc *LoginTrackerUseCase) List() ([]LoginEntry, error) {
	records, err := uc.logins.ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]LoginEntry, 0, len(records))
	for _, rec := range records {
		entry := LoginEntry{
			ID:           rec.ID,
			TimeLoggedIn: rec.Timestamp,
		}
		if rec.User != nil {
			entry.User = &LoginUser{
				Email: rec.User.Email,
				Name:  rec.User.Name,
				Role:  string(rec.User.Role),
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
