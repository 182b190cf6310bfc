package domain

import "errors"

var (
	// ErrEmptyIntent is returned when an intent is empty or whitespace-only.
	ErrEmptyIntent = errors.New("intent is empty")
	// ErrUnknownLayout is returned when a selected layout has no template.
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrUnknownSlotID is returned when a content plan references a slot id
	// the target layout does not declare. This fails the whole planning step.
	ErrUnknownSlotID = errors.New("content plan references unknown slot id")
	// ErrUnsafeURL is returned for iframe targets with forbidden schemes.
	ErrUnsafeURL = errors.New("unsafe url")
	// ErrDisallowedImport is returned when generated widget code references
	// modules or components outside the allow-list.
	ErrDisallowedImport = errors.New("disallowed import in generated code")
	// ErrMalformedResponse is returned when model output cannot be parsed
	// into the expected structure.
	ErrMalformedResponse = errors.New("malformed model response")
)
