package executor

import "errors"

// Kind classifies a failed command. It is carried in ExecutionResult.Error so
// callers can branch on it without parsing the message.
type Kind string

const (
	KindUnparseable          Kind = "unparseable_command"
	KindUnknownTarget        Kind = "unknown_target"
	KindUnknownValue         Kind = "unknown_value"
	KindUnresolvableRelative Kind = "unresolvable_relative_change"
	KindInvalidCurrentValue  Kind = "invalid_current_value"
	KindUnknownPreset        Kind = "unknown_preset"
)

var (
	ErrUnparseable          = errors.New("unparseable command")
	ErrUnknownTarget        = errors.New("unknown target")
	ErrUnknownValue         = errors.New("unknown value")
	ErrUnresolvableRelative = errors.New("unresolvable relative change")
	ErrInvalidCurrentValue  = errors.New("invalid current token value")
	ErrUnknownPreset        = errors.New("unknown preset")
)

var kindErrors = map[Kind]error{
	KindUnparseable:          ErrUnparseable,
	KindUnknownTarget:        ErrUnknownTarget,
	KindUnknownValue:         ErrUnknownValue,
	KindUnresolvableRelative: ErrUnresolvableRelative,
	KindInvalidCurrentValue:  ErrInvalidCurrentValue,
	KindUnknownPreset:        ErrUnknownPreset,
}

// Err returns the sentinel error for k, or nil for the empty kind.
func (k Kind) Err() error {
	return kindErrors[k]
}
