// Package envx provides utility functions for extracting information from environment variables
package envx

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Int retrieve a integer flag from the environment, checks each key in order
// first to parse successfully is returned.
func Int[T int | int64](fallback T, keys ...string) T {
	return envval(fallback, func(s string) (T, error) {
		decoded, err := strconv.ParseInt(s, 10, 64)
		return T(decoded), errors.Wrapf(err, "integer '%s' is invalid", s)
	}, keys...)
}

// Boolean retrieve a boolean flag from the environment, checks each key in order
// first to parse successfully is returned.
func Boolean(fallback bool, keys ...string) bool {
	return envval(fallback, func(s string) (bool, error) {
		decoded, err := strconv.ParseBool(s)
		return decoded, errors.Wrapf(err, "boolean '%s' is invalid", s)
	}, keys...)
}

// String retrieve a string value from the environment, checks each key in order
// first string found is returned.
func String(fallback string, keys ...string) string {
	return envval(fallback, func(s string) (string, error) {
		// we'll never receive an empty string because envval skips empty strings.
		return s, nil
	}, keys...)
}

func envval[T any](fallback T, parse func(string) (T, error), keys ...string) T {
	for _, k := range keys {
		s := strings.TrimSpace(os.Getenv(k))
		if s == "" {
			continue
		}

		decoded, err := parse(s)
		if err != nil {
			log.Printf("%s stored an invalid value %v\n", k, err)
			continue
		}

		return decoded
	}

	return fallback
}
