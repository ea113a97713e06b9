package utils

import "github.com/gofrs/uuid"

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.FromString(uuidStr)
}

func ValidateUUID(uuidStr string) bool {
	_, err := uuid.FromString(uuidStr)
	return err == nil
}
