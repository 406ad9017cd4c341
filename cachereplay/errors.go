package cachereplay

import "errors"

// ErrNoValue is returned by GetString when no value is stored under the
// requested key. Retrieving an absent key is a caller error for the string
// accessor; the integer accessor deliberately maps the same condition to 0.
var ErrNoValue = errors.New("no value stored for key")

// ErrInvalidEncoding is returned by GetString when the stored bytes are not
// valid UTF-8.
var ErrInvalidEncoding = errors.New("stored value is not valid UTF-8")
