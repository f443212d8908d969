package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// DOIPrefix is the registry prefix for submitted papers. The identifier is
// DOI-shaped but not registered with any DOI agency.
const DOIPrefix = "RNCE"

// NewDOI generates a unique paper identifier, e.g.
// "RNCE-6ba7b810-9dad-11d1-80b4-00c04fd430c8".
func NewDOI() string {
	return fmt.Sprintf("%s-%s", DOIPrefix, uuid.NewString())
}
