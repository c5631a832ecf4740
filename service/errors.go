package service

import "errors"

var (
	ErrTweetNotFound      = errors.New("tweet not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrStatusNotFound     = errors.New("status not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyRequests    = errors.New("too many requests")
)
