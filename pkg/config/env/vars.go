package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Set reports whether key holds a non-blank value.
func Set(key string) bool {
	return strings.TrimSpace(os.Getenv(key)) != ""
}

func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Int reads a positive integer.
func Int(key string, def int) (int, error) {
	return IntAtLeast(key, def, 1)
}

func IntAtLeast(key string, def, lo int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo {
		return def, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func Bool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

// Float reads a float within [lo, hi].
func Float(key string, def, lo, hi float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < lo || f > hi {
		return def, fmt.Errorf("invalid %s %q", key, v)
	}
	return f, nil
}
