package utils

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256     HashAlgorithm = "sha256"
	SHA512     HashAlgorithm = "sha512"
	SHA3_256   HashAlgorithm = "sha3-256"
	BLAKE2b256 HashAlgorithm = "blake2b-256"
)

var constructors = map[HashAlgorithm]func() hash.Hash{
	SHA256:   sha256.New,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	BLAKE2b256: func() hash.Hash {
		// Only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hasher hands out incremental digests for one algorithm
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a hasher for algorithm. Unknown names are rejected so a
// typo never silently yields a digest of a different algorithm.
func NewHasher(algorithm HashAlgorithm) (*Hasher, error) {
	alg := HashAlgorithm(strings.ToLower(string(algorithm)))
	if _, ok := constructors[alg]; !ok {
		return nil, fmt.Errorf("unsupported hash algorithm %q (supported: %s)",
			algorithm, strings.Join(HashAlgorithms(), ", "))
	}
	return &Hasher{algorithm: alg}, nil
}

// DefaultHasher returns a SHA-256 hasher
func DefaultHasher() *Hasher {
	return &Hasher{algorithm: SHA256}
}

// Algorithm returns the hasher's algorithm
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// New returns a fresh incremental digest
func (h *Hasher) New() hash.Hash {
	return constructors[h.algorithm]()
}

// Hash computes the lowercase hex digest of data in one shot
func (h *Hasher) Hash(data []byte) string {
	d := h.New()
	d.Write(data)
	return Hex(d)
}

// Hex renders the current digest state as lowercase hex
func Hex(d hash.Hash) string {
	return hex.EncodeToString(d.Sum(nil))
}

// HashAlgorithms lists supported algorithm names in sorted order
func HashAlgorithms() []string {
	names := make([]string, 0, len(constructors))
	for alg := range constructors {
		names = append(names, string(alg))
	}
	sort.Strings(names)
	return names
}
