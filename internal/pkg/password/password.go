package password

import "golang.org/x/crypto/bcrypt"

// MinLength is the shortest password accepted at registration.
const MinLength = 8

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hashed), err
}

func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func Acceptable(plain string) bool {
	return len(plain) >= MinLength
}
