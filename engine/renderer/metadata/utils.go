package metadata

import (
	"github.com/google/uuid"
)

/** @brief Generates a unique name for an unclaimed lookup slot. */
func GenerateNewHash() string {
	return uuid.New().String()
}
