package models

import "errors"

var (
	ErrOfferingNotFound     = errors.New("offering not found")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrInvalidOffering      = errors.New("invalid offering")
	ErrChannelNotConfigured = errors.New("forwarding channel is not configured")
	ErrMalformedState       = errors.New("malformed intake state")
	ErrInvalidChannel       = errors.New("invalid channel identifier")
)
