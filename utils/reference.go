package utils

import (
	"fmt"
	"math/rand"
)

// ReferenceID generates the cosmetic inquiry reference shown in the
// acknowledgment mail, e.g. "REQ-482917". It is not the submission
// identifier and is never used for lookup.
func ReferenceID() string {
	return fmt.Sprintf("REQ-%06d", rand.Intn(1000000))
}
