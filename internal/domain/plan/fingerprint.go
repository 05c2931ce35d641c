package plan

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Fingerprint is a deterministic key derived from a request's semantic
// inputs. Two requests with identical fingerprints are equivalent and must
// never be double-charged to the generation provider.
type Fingerprint string

// ComputeFingerprint hashes a domain label together with the canonical JSON
// encoding of payload. encoding/json emits struct fields in declaration
// order and map keys sorted, so identical inputs always hash identically.
func ComputeFingerprint(domain string, payload interface{}) (Fingerprint, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint payload not encodable: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0})
	h.Write(data)
	return Fingerprint(fmt.Sprintf("%x", h.Sum(nil))), nil
}

// String returns the hex form of the fingerprint
func (f Fingerprint) String() string {
	return string(f)
}
