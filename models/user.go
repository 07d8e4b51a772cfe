package models

// User is a record held by the user storage.
//
// The json tags describe the internal (snake_case) spelling used in logs and
// persistence. The HTTP layer renders users through its own adapter, so
// the wire spelling is not decided here.
type User struct {
	// Name identifies the user. No two stored users share a name.
	Name string `json:"name"`

	// Age is the user's age in years.
	Age int `json:"age"`

	// IsVerified reports whether the user has been verified.
	IsVerified bool `json:"is_verified"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
