package kernel

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NoPostalCode is the sentinel substituted for an absent or blank postal code
// before fingerprinting. It keeps the fingerprint total over all inputs while
// still separating "no pin" destinations from ones that share an address line.
const NoPostalCode = "NO-PIN"

// fingerprintDomain prefixes the digest input for content-addressed identity.
// The version suffix enables future algorithm migration without colliding
// with fingerprints already persisted.
const fingerprintDomain = "lensdispatch/delivery-group/v1"

// NormalizedAddress is a value object that canonicalizes a destination
// address and postal code pair. Two differently-cased or differently-spaced
// but semantically identical inputs normalize to the same value and therefore
// to the same fingerprint.
//
// Normalization is a total function: it never rejects input. A whitespace-only
// address normalizes to the empty string and is still fingerprinted; deciding
// whether an empty address is acceptable is a store-directory concern, not a
// normalization concern.
//
// NormalizedAddress is immutable and safe for concurrent use.
//
// Example usage:
//
//	a := kernel.NewNormalizedAddress(" 12 Lens Ave ", "560001")
//	b := kernel.NewNormalizedAddress("12 lens ave", "560001")
//	a.Fingerprint() == b.Fingerprint() // true
type NormalizedAddress struct {
	address    string
	postalCode string
}

// NewNormalizedAddress canonicalizes the given address and postal code.
// The address is trimmed and lower-cased; the postal code is trimmed, with
// NoPostalCode substituted when it is absent or blank.
//
// The constructor never fails: normalization canonicalizes, it does not
// validate.
func NewNormalizedAddress(address, postalCode string) NormalizedAddress {
	normalized := strings.ToLower(strings.TrimSpace(address))
	pin := strings.TrimSpace(postalCode)
	if pin == "" {
		pin = NoPostalCode
	}

	return NormalizedAddress{
		address:    normalized,
		postalCode: pin,
	}
}

// Address returns the normalized (trimmed, lower-cased) address line.
func (a NormalizedAddress) Address() string {
	return a.address
}

// PostalCode returns the trimmed postal code, or NoPostalCode when the
// original input carried none.
func (a NormalizedAddress) PostalCode() string {
	return a.postalCode
}

// Fingerprint returns the deduplication key for this destination: the hex
// SHA-256 of the normalized address and postal code under the fingerprint
// domain. Null separators prevent boundary ambiguity between the fields.
//
// The digest provides content identity, not secrecy; any stable hash of
// fixed output width would satisfy the contract, SHA-256 is used for its
// negligible collision rate.
func (a NormalizedAddress) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(a.address))
	h.Write([]byte{0x00})
	h.Write([]byte(a.postalCode))
	return hex.EncodeToString(h.Sum(nil))
}

// IsEqual reports whether two normalized addresses denote the same physical
// destination.
func (a NormalizedAddress) IsEqual(other NormalizedAddress) bool {
	return a.address == other.address && a.postalCode == other.postalCode
}
