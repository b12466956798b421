package mal

import (
	"encoding/binary"

	"github.com/glycerine/blake2b"
)

// Blake2bUint64 returns an 8 byte BLAKE2b cryptographic
// hash of the raw.
func Blake2bUint64(raw []byte) (uint64, error) {
	cfg := &blake2b.Config{Size: 8}
	h, err := blake2b.New(cfg)
	if err != nil {
		return 0, err
	}
	h.Write(raw)
	by := h.Sum(nil)
	return binary.LittleEndian.Uint64(by[:8]), nil
}

// Fingerprint hashes the canonical text of x, so two trees that
// print the same share a fingerprint regardless of how their
// source was spelled.
func Fingerprint(x Sexp) (uint64, error) {
	return Blake2bUint64([]byte(Print(x)))
}
