package csvschema

import (
	"context"
	"sync"
)

// CompiledSchema validates typed records against one compiled schema
// document. An empty result means the record was accepted.
type CompiledSchema interface {
	Validate(ctx context.Context, rec TypedRecord) Issues
}

// Validator compiles a Schema into a reusable CompiledSchema. Constraint
// evaluation is an external capability consumed through this SPI; any
// conformant backend can be plugged in. Implementations live under
// validator/.
type Validator interface {
	Compile(s *Schema) (CompiledSchema, error)
	Name() string
}

var (
	validatorMu      sync.RWMutex
	currentValidator Validator
)

// SetValidator replaces the process-wide default backend; nil values are
// ignored.
func SetValidator(v Validator) {
	if v == nil {
		return
	}
	validatorMu.Lock()
	currentValidator = v
	validatorMu.Unlock()
}

// DefaultValidator returns the registered default backend, or nil when none
// has been registered.
func DefaultValidator() Validator {
	validatorMu.RLock()
	v := currentValidator
	validatorMu.RUnlock()
	return v
}
