package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Implementations are safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password. It fails for inputs the
	// algorithm cannot handle (bcrypt: longer than 72 bytes).
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. An empty or malformed
	// hash never matches.
	Verify(password, hash string) bool
}
