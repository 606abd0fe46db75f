package client

import "errors"

// ErrClosed is returned by Repositories methods after Close.
var ErrClosed = errors.New("cache closed")
