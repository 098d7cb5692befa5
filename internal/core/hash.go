package core

import "fmt"

// ShortHash produces a small stable digest used to disambiguate file
// names; it only needs to be deterministic, not cryptographic.
func ShortHash(content string) string {
	result := 0
	for _, b := range []byte(content) {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%d", result)
}
