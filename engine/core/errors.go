package core

import (
	"errors"
)

var (
	ErrChunkNotPending  = errors.New("chunk is not pending, nothing to cancel")
	ErrManagerShutdown  = errors.New("manager already shut down")
	ErrNoWorkers        = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChanSize = errors.New("attempting to create worker pool with a negative channel size")
	ErrUnknown          = errors.New("unknown")
)
