package domain

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace scopes ids derived from event content.
var idNamespace = uuid.MustParse("3f1c5b2e-8d4a-4e9b-a1c7-6d2f8e0b4a95")

// DeterministicID derives a stable UUID from the given parts. A redelivered
// event regenerates the same id, so ON CONFLICT (id) DO NOTHING upserts
// absorb duplicate messages and notification records without coordination.
func DeterministicID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(parts, "/")))
}
