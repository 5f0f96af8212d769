package lfu

import "fmt"

type constError string

// ErrInvalidMaxSize may be returned from [New].
const ErrInvalidMaxSize = constError("invalid max size")

func (errStr constError) Error() string { return string(errStr) }

func maxSizeError(size int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidMaxSize, size)
}
