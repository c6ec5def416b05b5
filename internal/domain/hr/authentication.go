package hr

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
