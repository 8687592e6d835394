package sample

import "errors"

var (
	ErrUnknownKind = errors.New("unknown sample kind")
)
