// Package config exposes the process environment as a flat key/value map
// with typed accessors. Server timeouts, the JWT signing secret, database
// coordinates and ranker settings are all read through it.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the environment. Changes made after the snapshot are not
// visible through the returned map.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		envAsMap[key] = value
	}
	return envAsMap
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
