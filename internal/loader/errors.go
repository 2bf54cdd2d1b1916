package loader

import "fmt"

// FormatError reports input that does not follow the graph format.
type FormatError struct {
	// Line is the 1-based line number the problem was found on.
	Line int
	Msg  string
	Err  error
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ResourceError reports a source that could not be opened or read.
type ResourceError struct {
	Path string
	Err  error
}

// Error implements the error interface for ResourceError.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot read graph source %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// AllocationError reports a declared node count the loader refuses to
// allocate storage for.
type AllocationError struct {
	// Requested is the declared count, saturated at math.MaxUint64 when the
	// header does not fit in 64 bits.
	Requested uint64
	Limit     int
}

// Error implements the error interface for AllocationError.
func (e *AllocationError) Error() string {
	return fmt.Sprintf("node count %d exceeds the limit of %d", e.Requested, e.Limit)
}
