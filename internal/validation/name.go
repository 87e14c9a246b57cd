package validation

import (
	"errors"
	"strings"
)

// ValidateName validates user-supplied display names (pillars, habits,
// garden titles).
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateRemark validates the optional free-text note attached to a commit.
func ValidateRemark(remark string) error {
	if len(remark) > 500 {
		return errors.New("remark is too long (max 500 characters)")
	}
	return nil
}
