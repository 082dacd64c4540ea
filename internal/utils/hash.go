package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the server's
// hash key. InitHasherPool must run before the first Hash call.
var hasherPool sync.Pool

// InitHasherPool prepares the package-level pool of HMAC-SHA256 hashers with
// the given key. The server calls it once at startup with App.HashKey; the
// upload middleware and the sync hash comparison then draw hashers from the
// pool instead of allocating one per request body.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the keyed HMAC-SHA256 digest of data using a pooled hasher.
// Both sides of the note transport use it: the client signs the serialized
// notes of an upload, the server recomputes the digest to detect payloads
// corrupted or tampered with in transit.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes a hex-encoded HMAC-SHA256 digest of data under hashKey.
// It allocates a fresh HMAC per call and does not touch the pool, so it is
// safe to use with a different key than InitHasherPool was given. The auth
// service uses it to derive the stored credential digest from a password.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
