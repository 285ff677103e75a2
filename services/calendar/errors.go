package calendar

import "errors"

// ErrInvalidTimeBlock is returned when a busy block does not satisfy
// start < end.
var ErrInvalidTimeBlock = errors.New("busy block must have start before end")
