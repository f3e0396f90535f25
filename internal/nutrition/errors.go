package nutrition

import "errors"

var (
	ErrInvalidValue   = errors.New("invalid value")
	ErrUnknownField   = errors.New("unknown profile field")
	ErrFieldNotInStep = errors.New("field is not editable in the current step")
	ErrUnknownOption  = errors.New("unknown option")
	ErrUnknownFood    = errors.New("unknown food")
	ErrInvalidMeal    = errors.New("invalid meal type")
)
