package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/content_cipher_mock.go -package=mock

// ContentCipher provides passphrase-based confidentiality and integrity for
// opaque note content, entirely on the client side. It knows nothing about
// the network, the database, or users.
//
// Ciphertext is self-identifying: content produced by EncryptContent carries
// the "ENC:" prefix, and that prefix is the sole discriminator between
// encrypted and plain content inside a text field.
//
// Storage format after the prefix is stripped:
//
//	base64(salt[16] ‖ iv[12] ‖ ciphertext)
//
// where ciphertext is AES-256-GCM output with the 16-byte authentication tag
// appended, and the key is derived from the passphrase with PBKDF2-SHA256.
type ContentCipher interface {
	// Encrypt encrypts plaintext under a key derived from password and
	// returns a base64 blob (salt ‖ iv ‖ ciphertext). Salt and IV are
	// regenerated from the OS CSPRNG on every call, so two calls with
	// identical inputs never produce the same output. Returns an error
	// only on platform-level crypto failures; there is no fallback path.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt reverses Encrypt. ok is false uniformly for a wrong
	// password, tampered ciphertext, malformed base64, or a blob too
	// short to contain salt and IV — the causes are intentionally
	// indistinguishable so no oracle leaks which one occurred.
	// When ok is false the returned string is always empty; callers must
	// never display partial content.
	Decrypt(encoded, password string) (plaintext string, ok bool)

	// MarkAsEncrypted prepends the "ENC:" marker to blob.
	MarkAsEncrypted(blob string) string

	// IsEncryptedContent reports whether content carries the "ENC:"
	// marker. It is a pure prefix check: malformed base64 after the
	// marker is only discovered at decrypt time.
	IsEncryptedContent(content string) bool

	// RemoveEncryptionMark strips the "ENC:" marker if present.
	RemoveEncryptionMark(content string) string

	// EncryptContent is MarkAsEncrypted(Encrypt(content, password)).
	EncryptContent(content, password string) (string, error)

	// DecryptContent returns content unchanged (ok=true) when it does not
	// carry the "ENC:" marker — pass-through for legacy plaintext data.
	// Otherwise it strips the marker and decrypts, with ok=false per the
	// Decrypt contract.
	DecryptContent(content, password string) (plaintext string, ok bool)

	// ValidatePassword checks the passphrase against the configured
	// minimum length. This is advisory UI validation, not a security
	// boundary; message is non-empty only when valid is false.
	ValidatePassword(password string) (valid bool, message string)
}
