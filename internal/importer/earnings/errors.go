package earnings

import "errors"

var ErrUnknownFormat = errors.New("unrecognised earnings file")
