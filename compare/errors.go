package compare

import "errors"

// Configuration errors, returned by the generator constructors before any
// instance is ever compared.
var (
	// ErrNoRules is returned when a generator is configured with an
	// empty rule list.
	ErrNoRules = errors.New("at least one comparison rule must be provided")

	// ErrMisplacedTarget is returned when the target type arrives where
	// the first rule token belongs, the usual symptom of configuring a
	// generator without any rule arguments.
	ErrMisplacedTarget = errors.New("target type supplied in place of a rule")

	// ErrUnpairedRule is returned when the flat token list has odd
	// length, leaving an accessor without a direction.
	ErrUnpairedRule = errors.New("rule tokens must form accessor and direction pairs")

	// ErrBadDirection is returned for direction tokens outside asc/desc.
	ErrBadDirection = errors.New("invalid sort direction")

	// ErrBadAccessor is returned for accessor tokens that are neither a
	// field name nor a getter function, and for field-name accessors on
	// non-struct targets.
	ErrBadAccessor = errors.New("invalid accessor")

	// ErrUnknownField is returned when a field-name accessor does not
	// resolve to an exported field of the target type.
	ErrUnknownField = errors.New("unknown field")
)

// Comparison errors, returned while evaluating an ordering.
var (
	// ErrTypeMismatch is returned by Less when the two operands, or two
	// values retrieved by the same rule, have different dynamic types.
	// Equality does not error in this situation; it reports false.
	ErrTypeMismatch = errors.New("compared values are not of the same type")

	// ErrNotOrderable is returned by Less when a rule retrieves values
	// of a kind that has no ordering.
	ErrNotOrderable = errors.New("value kind has no ordering")
)
