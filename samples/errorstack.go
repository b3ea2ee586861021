package samples

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// An error stack is a single-entry StackToSampleCount whose key encodes a
// profiling failure as a synthetic frame:
//
//	comm;[Profiling what: reason]
//
// It either replaces a profile that produced no real data, or is folded
// into real stacks with AttachErrorToStacks.
const errorFrameMarker = ";[Profiling "

// NewErrorStack builds the single-entry container for a failure of stage
// what with the given reason, attributed to comm. The result always
// satisfies IsErrorStack; a violation means the inputs produced a
// malformed key and is a programming error.
func NewErrorStack(what, reason, comm string) StackToSampleCount {
	s := StackToSampleCount{
		fmt.Sprintf("%s;[Profiling %s: %s]", comm, what, reason): 1,
	}
	if !IsErrorStack(s) {
		panic(fmt.Sprintf("samples: constructed malformed error stack from what=%q reason=%q comm=%q", what, reason, comm))
	}
	return s
}

// IsErrorStack reports whether stack is exactly one entry whose key has
// the error frame shape. The check is structural rather than a regexp so
// a reason containing "]" cannot change the outcome.
func IsErrorStack(stack StackToSampleCount) bool {
	if len(stack) != 1 {
		return false
	}
	for key := range stack {
		return isErrorKey(key)
	}
	return false
}

func isErrorKey(key string) bool {
	_, frame, ok := strings.Cut(key, errorFrameMarker)
	if !ok {
		return false
	}
	// The stage before ": " must be non-empty, and at least one character
	// of reason must precede the closing bracket. The reason itself may
	// contain any characters, "]" and ": " included.
	off := 0
	for {
		sep := strings.Index(frame[off:], ": ")
		if sep < 0 {
			return false
		}
		sep += off
		if sep == 0 {
			off = 1
			continue
		}
		return strings.LastIndexByte(frame[sep+2:], ']') >= 1
	}
}

// AttachErrorToStacks folds the error stack's synthetic frame into every
// stack of source, immediately after the comm segment, preserving counts:
//
//	comm;frame1;frame2 -> comm;[Profiling what: reason];frame1;frame2
//
// errorStack must satisfy IsErrorStack; passing anything else is a
// programming error and panics. Every source key must carry at least one
// frame beyond the comm name, otherwise an error naming the key is
// returned and no partial result is produced. An empty source yields an
// empty result.
func AttachErrorToStacks(source, errorStack StackToSampleCount) (StackToSampleCount, error) {
	if !IsErrorStack(errorStack) {
		panic(fmt.Sprintf("samples: attaching non-error stack %v", errorStack))
	}
	var errorFrame string
	for key := range errorStack {
		_, errorFrame, _ = strings.Cut(key, ";")
	}
	dest := make(StackToSampleCount, len(source))
	for key, count := range source {
		comm, stack, ok := strings.Cut(key, ";")
		if !ok {
			return nil, errors.Errorf("malformed stack key %q: no frames after comm", key)
		}
		dest[comm+";"+errorFrame+";"+stack] = count
	}
	return dest, nil
}
