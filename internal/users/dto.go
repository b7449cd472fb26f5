package users

import "github.com/mfigueira/counseldesk/pkg/store/models"

// AdminEmail is the fixed administrator address. A user is flagged admin
// only when signing up with this exact email; the flag is never re-derived.
const AdminEmail = "admin@counseldesk.com"

// CreateUserDTO carries the fields persisted for a new user. Password must
// already be a fingerprint.
type CreateUserDTO struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// ToModel materializes the gorm model, stamping the creation-time defaults.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Password:  d.Password,
		IsActive:  true,
		IsAdmin:   d.Email == AdminEmail,
	}
}
