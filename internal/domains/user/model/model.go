package model

import (
	"time"

	"cleanmatch/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldBio       = "bio"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// User is a platform account tagged with one role: admin, cleaner or
// homeowner. Role-specific attributes live in nullable columns: Address is
// only meaningful for home owners, Bio for cleaners.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	FullName  string     `db:"full_name"`
	Phone     *string    `db:"phone"`
	Address   *string    `db:"address"`
	Bio       *string    `db:"bio"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
