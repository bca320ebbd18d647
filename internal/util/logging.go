// Package util provides common utilities: logging helpers, data and
// report directory resolution, and passphrase validation.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
