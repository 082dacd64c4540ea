// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// encryptedMark tags ciphertext inside plaintext-typed storage fields.
	encryptedMark = "ENC:"

	// saltSize is the PBKDF2 salt length in bytes.
	saltSize = 16

	// ivSize is the AES-GCM nonce length in bytes.
	ivSize = 12

	// keySize is the derived AES-256 key length in bytes.
	keySize = 32

	// kdfIterations is the PBKDF2 iteration count. Deliberately slow to
	// resist brute-force passphrase guessing; changing it breaks
	// decryption of nothing (the salt is per-blob, the count is not),
	// but weakens every blob encrypted afterwards.
	kdfIterations = 100_000

	// DefaultMinPasswordLength is the advisory passphrase length floor.
	// Known-weak policy inherited from the original product; override it
	// via [WithMinPasswordLength].
	DefaultMinPasswordLength = 4
)

// contentCipher is the private implementation of [ContentCipher].
type contentCipher struct {
	// minPasswordLen is the advisory validation threshold. Stored in the
	// struct so deployments can tighten the policy without a rebuild.
	minPasswordLen int
}

// Option configures a [ContentCipher] created by [NewContentCipher].
type Option func(*contentCipher)

// WithMinPasswordLength overrides the advisory minimum passphrase length
// used by ValidatePassword. Values below 1 are ignored.
func WithMinPasswordLength(n int) Option {
	return func(c *contentCipher) {
		if n >= 1 {
			c.minPasswordLen = n
		}
	}
}

// NewContentCipher constructs a [ContentCipher] with the scheme parameters
// fixed by the storage format:
//   - key derivation: PBKDF2-SHA256, 100,000 iterations, 256-bit key
//   - encryption:     AES-256-GCM, 16-byte salt, 12-byte IV, fresh per call
func NewContentCipher(opts ...Option) ContentCipher {
	c := &contentCipher{
		minPasswordLen: DefaultMinPasswordLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// deriveKey stretches password into a 256-bit AES key using PBKDF2-SHA256
// with the package iteration count. Deterministic for identical
// (password, salt) pairs.
func (c *contentCipher) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keySize, sha256.New)
}

// Encrypt implements [ContentCipher]. The output blob layout is
// salt (16) ‖ iv (12) ‖ ciphertext, base64 std encoding. Salt and IV come
// from the OS CSPRNG on every call, never derived from the passphrase.
func (c *contentCipher) Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return "", err
	}

	// Prepend salt and IV so Decrypt can split them out again.
	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)
	blob := make([]byte, 0, saltSize+ivSize+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ContentCipher]. Every expected failure — bad base64,
// blob too short, wrong password, flipped ciphertext byte — collapses into
// ok=false with no distinction between causes.
func (c *contentCipher) Decrypt(encoded, password string) (string, bool) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	if len(blob) < saltSize+ivSize {
		return "", false
	}

	salt := blob[:saltSize]
	iv := blob[saltSize : saltSize+ivSize]
	ciphertext := blob[saltSize+ivSize:]

	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return "", false
	}

	// Auth-tag verification happens here. An error almost always means a
	// wrong passphrase, but a tampered blob fails identically.
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", false
	}

	return string(plaintext), true
}

// newGCM derives the key for (password, salt) and builds the AEAD.
// Construction failures here are platform-level and fatal to the call.
func (c *contentCipher) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := c.deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// MarkAsEncrypted implements [ContentCipher].
func (c *contentCipher) MarkAsEncrypted(blob string) string {
	return encryptedMark + blob
}

// IsEncryptedContent implements [ContentCipher].
func (c *contentCipher) IsEncryptedContent(content string) bool {
	return strings.HasPrefix(content, encryptedMark)
}

// RemoveEncryptionMark implements [ContentCipher].
func (c *contentCipher) RemoveEncryptionMark(content string) string {
	return strings.TrimPrefix(content, encryptedMark)
}

// EncryptContent implements [ContentCipher].
func (c *contentCipher) EncryptContent(content, password string) (string, error) {
	blob, err := c.Encrypt(content, password)
	if err != nil {
		return "", fmt.Errorf("encrypt content: %w", err)
	}
	return c.MarkAsEncrypted(blob), nil
}

// DecryptContent implements [ContentCipher]. Unmarked content passes through
// unchanged so pre-existing plaintext notes keep working.
func (c *contentCipher) DecryptContent(content, password string) (string, bool) {
	if !c.IsEncryptedContent(content) {
		return content, true
	}
	return c.Decrypt(c.RemoveEncryptionMark(content), password)
}

// ValidatePassword implements [ContentCipher].
func (c *contentCipher) ValidatePassword(password string) (bool, string) {
	if len([]rune(password)) < c.minPasswordLen {
		return false, fmt.Sprintf("passphrase must be at least %d characters long", c.minPasswordLen)
	}
	return true, ""
}
