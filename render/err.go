package render

import (
	"github.com/ezrec/rissy/translate"
)

var f = translate.From

// ErrFormatUnknown is an output format name that is not supported.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("output format '%v' unknown", string(err))
}
