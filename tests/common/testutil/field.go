//go:build unit || e2e

package testutil

// Field returns a mutation for map-based request bodies: set a value, or
// delete the key entirely when value is nil (missing-field cases).
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// CloneBody shallow-copies a request body map so table tests can mutate
// per-case without sharing state.
func CloneBody(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
