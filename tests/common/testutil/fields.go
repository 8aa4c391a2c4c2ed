//go:build unit || e2e

package testutil

// Field returns a mutation that sets or (for nil) removes a map key, for
// building invalid request variants from a valid base.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
