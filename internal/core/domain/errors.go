package domain

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")
