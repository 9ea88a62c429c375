package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest of the password. The salt and
// cost are embedded in the result, so verification needs no extra state.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time; a mismatch is false, never
// an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
