package command

import "errors"

var ErrParse = errors.New("invalid position")
