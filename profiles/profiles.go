// Package profiles ties one process's sampled stacks together with the
// identity metadata collected about it during a profiling round.
package profiles

import (
	"github.com/grafana/procprof/samples"
)

// Metadata is structured application metadata. The shape is defined by
// whichever collector produced it; values must be JSON-compatible.
type Metadata map[string]interface{}

// ProfileData is everything collected about a single process in one
// round. Stacks is owned exclusively by the record; the other fields are
// optional and zero-valued when unknown.
type ProfileData struct {
	Stacks        samples.StackToSampleCount
	AppID         string
	AppMetadata   Metadata
	ContainerName string
}

func NewProfileData(stacks samples.StackToSampleCount, appID string, appMetadata Metadata, containerName string) *ProfileData {
	return &ProfileData{
		Stacks:        stacks,
		AppID:         appID,
		AppMetadata:   appMetadata,
		ContainerName: containerName,
	}
}

// AttachError replaces Stacks with a copy annotated by the error stack's
// synthetic frame. Used when sampling partially failed but real data was
// still collected.
func (pd *ProfileData) AttachError(errorStack samples.StackToSampleCount) error {
	annotated, err := samples.AttachErrorToStacks(pd.Stacks, errorStack)
	if err != nil {
		return err
	}
	pd.Stacks = annotated
	return nil
}

// SetErrorStack discards any collected stacks and replaces them with a
// single error stack. Used when collection for the process failed
// entirely.
func (pd *ProfileData) SetErrorStack(what, reason, comm string) {
	pd.Stacks = samples.NewErrorStack(what, reason, comm)
}

// IsError reports whether the record holds only an error placeholder
// instead of real sampled data.
func (pd *ProfileData) IsError() bool {
	return samples.IsErrorStack(pd.Stacks)
}

// ProcessToStackSampleCounters maps pid to the raw per-process sample
// counters of one round, before metadata is attached.
type ProcessToStackSampleCounters map[uint32]samples.StackToSampleCount

// ProcessToProfileData maps pid to the assembled per-process record.
type ProcessToProfileData map[uint32]*ProfileData
