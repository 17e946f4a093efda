package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrProjectNotFound     = errors.New("project not found")
	ErrIssueNotFound       = errors.New("issue not found")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrNotFound            = errors.New("not found")
)
