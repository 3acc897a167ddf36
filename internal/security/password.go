package security

import "golang.org/x/crypto/bcrypt"

// EncryptPassword hashes a plaintext password with a per-call salt. The
// result verifies with ComparePassword but cannot be reversed.
func EncryptPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a candidate plaintext against a stored hash.
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
