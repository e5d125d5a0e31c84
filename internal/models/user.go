package models

// User is a customer account.
//
// The password is stored as submitted, because the existing users.json
// files hold plaintext values and hashed passwords would break
// interchange with them. Sanitize strips the field before a record
// leaves the backend.
type User struct {
	ID    string `json:"id"` // "user-..."
	Name  string `json:"name"`
	Email string `json:"email"` // stored lowercased, unique case-insensitively
	Phone string `json:"phone,omitempty"`

	Password string `json:"password,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// Sanitize returns a copy of the user with the password removed.
// Every response path must go through this; raw users never leave
// the storage boundary.
func (u User) Sanitize() User {
	u.Password = ""
	return u
}
