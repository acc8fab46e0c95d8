package domain

import "regexp"

// usernamePattern is the only accepted username shape.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// User is a registered account. The password is only ever held as a bcrypt hash.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
	Email        string `json:"email"`
}

// ValidUsername reports whether username is 3-20 characters of [A-Za-z0-9_].
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
