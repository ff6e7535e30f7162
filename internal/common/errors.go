package common

import "fmt"

// Complain prefixes err with label, keeping err reachable through errors.Is and
// errors.As. A nil err stays nil.
func Complain(label string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", label, err)
}

// Complainf is Complain for a formatted label.
func Complainf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return Complain(fmt.Sprintf(format, args...), err)
}
