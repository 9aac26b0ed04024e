package art

import (
	"fmt"
)

const (
	MinTitleLen       = 1
	MaxTitleLen       = 64
	MaxSize           = 1_000_000_000 // exclusive
	MinDescriptionLen = 1
	MaxDescriptionLen = 128
	MinTags           = 1
	MaxTags           = 10
	MinTagLen         = 1
	MaxTagLen         = 32
)

// ValidateFields checks every metadata field against the registry bounds.
// Title, description and tag violations are all reported as ErrInvalidTitle;
// size violations as ErrInvalidSize.
func ValidateFields(title string, size int64, description string, tags []string) error {
	if len(title) < MinTitleLen || len(title) > MaxTitleLen {
		return fmt.Errorf("%w: title length must be in [%d,%d]", ErrInvalidTitle, MinTitleLen, MaxTitleLen)
	}

	if size <= 0 || size >= MaxSize {
		return fmt.Errorf("%w: size must be positive and below %d", ErrInvalidSize, MaxSize)
	}

	if len(description) < MinDescriptionLen || len(description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description length must be in [%d,%d]", ErrInvalidTitle, MinDescriptionLen, MaxDescriptionLen)
	}

	if len(tags) < MinTags || len(tags) > MaxTags {
		return fmt.Errorf("%w: tag count must be in [%d,%d]", ErrInvalidTitle, MinTags, MaxTags)
	}

	for i, tag := range tags {
		if len(tag) < MinTagLen || len(tag) > MaxTagLen {
			return fmt.Errorf("%w: tag %d length must be in [%d,%d]", ErrInvalidTitle, i, MinTagLen, MaxTagLen)
		}
	}

	return nil
}
