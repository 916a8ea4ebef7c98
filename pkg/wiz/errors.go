package wiz

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the bulb did not reply before the deadline
	ErrTimeout = errors.New("device did not reply in time")

	// ErrUnreachable indicates the bulb could not be reached over the network
	ErrUnreachable = errors.New("device unreachable")

	// ErrMalformedReply indicates the bulb replied with data that could not be decoded
	ErrMalformedReply = errors.New("malformed device reply")

	// ErrInvalidArgument indicates a caller-supplied value was rejected
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPoweredOff indicates the bulb is off and must be turned on first
	ErrPoweredOff = errors.New("light is powered off")
)

// DeviceError is a JSON-RPC error object returned by the bulb itself,
// e.g. {"error":{"code":-32601,"message":"Method not found"}}.
type DeviceError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error %d: %s", e.Code, e.Message)
}
