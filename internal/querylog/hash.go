package querylog

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// DomainQuery separates query IDs from any other hash in the system.
const DomainQuery = "bytescript/query/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// QueryID returns the content address of a query text. Texts that differ
// only in Unicode normalization share an ID.
func QueryID(text string) string {
	return hashWithDomain(DomainQuery, []byte(norm.NFC.String(text)))
}
