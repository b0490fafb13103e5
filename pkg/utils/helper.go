package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseUUIDList splits a comma-separated query parameter into UUIDs.
// Invalid entries are skipped rather than failing the whole filter.
func ParseUUIDList(value string) []uuid.UUID {
	if value == "" {
		return nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(value, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
