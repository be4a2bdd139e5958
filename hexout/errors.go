package hexout

import "fmt"

// InvalidGroupSizeError is returned when Settings.GroupSize is outside 1..MaxGroupSize.
type InvalidGroupSizeError struct {
	GroupSize int
}

func (e *InvalidGroupSizeError) Error() string {
	return fmt.Sprintf("invalid group size %d (must be 1-%d)", e.GroupSize, MaxGroupSize)
}

// UnalignedOffsetError is returned in strict mode when the offset is not a
// multiple of the group size.
type UnalignedOffsetError struct {
	Offset    int
	GroupSize int
}

func (e *UnalignedOffsetError) Error() string {
	return fmt.Sprintf("offset %d does not align with group size %d in strict mode (offset %% group_size = %d)",
		e.Offset, e.GroupSize, e.Offset%e.GroupSize)
}
