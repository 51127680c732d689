package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/eduplan/timetable-engine/internal/dto"
)

// Fingerprint derives a stable cache key from an input document. It is a
// pure function of the document's JSON encoding: the same document always
// produces the same fingerprint, and callers (internal/httpapi) use it
// to memoize solved documents in pkg/cache without the core ever knowing
// a cache exists.
func Fingerprint(doc *dto.InputDocument) (string, error) {
	canonical, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
