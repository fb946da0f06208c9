package model

import "elysian/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldLifecycle = "lifecycle"
)

type User struct {
	ID        string  `db:"id"`
	Username  string  `db:"username"`
	Password  string  `db:"password"`
	FullName  string  `db:"full_name"`
	Role      string  `db:"role"`
	LastLogin *string `db:"last_login"`
	model.Lifecycle
	model.Metadata
}

// CanLogin reports whether the account may authenticate. Inactive and
// deleted staff keep their rows for audit attribution but cannot sign in.
func (u User) CanLogin() bool {
	return u.Lifecycle.Lifecycle == model.LifecycleActive
}
