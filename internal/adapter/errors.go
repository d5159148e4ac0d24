package adapter

import (
	"errors"

	"github.com/MKhiriev/go-garden-keeper/internal/app"
)

var (
	ErrUnauthorized       = errors.New(app.MsgUnauthorized)
	ErrUnexpectedResponse = errors.New("unexpected server response")
	ErrEmptyAddress       = errors.New("empty address")
)
