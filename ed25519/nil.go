package ed25519

import "reflect"

// isNil reports nil interfaces and interfaces holding a nil pointer, whose
// methods may dereference it.
func isNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
