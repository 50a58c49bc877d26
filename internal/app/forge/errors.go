package forge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationFailed      = errors.New("validation_failed")
	ErrInsufficientFunds     = errors.New("insufficient_funds")
	ErrInsufficientFragments = errors.New("insufficient_fragments")
	ErrInsufficientInventory = errors.New("insufficient_inventory")
	ErrCooldownActive        = errors.New("cooldown_active")
	ErrMissingMaterial       = errors.New("missing_material")
	ErrNotFound              = errors.New("not_found")
)

func missingMaterialError(items []string) error {
	return fmt.Errorf("%w: %s", ErrMissingMaterial, strings.Join(items, ","))
}
