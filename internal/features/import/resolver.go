package import_feature

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// refCandidate is one entity a spreadsheet cell may point at, by short
// code or by display name.
type refCandidate struct {
	ID   primitive.ObjectID
	Code string
	Name string
}

// resolveReference matches raw against the candidates: exact code match
// first, then case-insensitive name match. When a code and a name collide
// on the same literal, the code match wins because it is checked first.
func resolveReference(raw string, candidates []refCandidate) (primitive.ObjectID, bool) {
	for _, c := range candidates {
		if c.Code == raw {
			return c.ID, true
		}
	}

	lower := strings.ToLower(raw)
	for _, c := range candidates {
		if strings.ToLower(c.Name) == lower {
			return c.ID, true
		}
	}

	return primitive.NilObjectID, false
}
