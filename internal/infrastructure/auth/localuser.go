package auth

import (
	"os"
	"os/user"
)

// LocalUsername returns the operating system username of the server process,
// used to pre-fill the login form in single-user deployments. Returns an
// empty string when no hint is available.
func LocalUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
