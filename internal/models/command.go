package models

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/wheelibin/light-driver/internal/constants"
)

type StatusCode string

const (
	StatusOK             StatusCode = "OK"
	StatusNotImplemented StatusCode = "NOT_IMPLEMENTED"

	// transport level codes, never returned by a command handler
	StatusBadRequest  StatusCode = "BAD_REQUEST"
	StatusNotFound    StatusCode = "NOT_FOUND"
	StatusServerError StatusCode = "SERVER_ERROR"
)

type DeviceState string

const (
	DeviceStateConnected    DeviceState = "CONNECTED"
	DeviceStateConnecting   DeviceState = "CONNECTING"
	DeviceStateDisconnected DeviceState = "DISCONNECTED"
	DeviceStateError        DeviceState = "ERROR"
)

// Params holds the optional arguments of a command.
// A nil Params is valid and behaves like an empty one.
type Params map[string]any

// Brightness returns the brightness argument when it is present and usable.
// Zero, and values that can't be read as an integer in [1, 255], are reported as absent.
// Numeric strings are read as decimal.
func (p Params) Brightness() (int, bool) {
	raw, ok := p[constants.ParamBrightness]
	if !ok || raw == nil {
		return 0, false
	}
	if _, isBool := raw.(bool); isBool {
		return 0, false
	}

	if str, isString := raw.(string); isString {
		raw = strings.TrimLeft(strings.TrimSpace(str), "0")
	}

	b, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false
	}
	if b <= 0 || b > constants.MaxBrightness {
		return 0, false
	}
	return b, true
}

// BrightnessOr returns the brightness argument, or fallback when it is absent or unusable
func (p Params) BrightnessOr(fallback int) int {
	if b, ok := p.Brightness(); ok {
		return b
	}
	return fallback
}

// CommandHandler executes commands sent to an entity.
// Implementations report the outcome through the status code and must not fail.
type CommandHandler interface {
	Handle(entity Entity, commandID string, params Params) StatusCode
}

// CommandHandlerFunc adapts a plain function to a CommandHandler
type CommandHandlerFunc func(entity Entity, commandID string, params Params) StatusCode

func (f CommandHandlerFunc) Handle(entity Entity, commandID string, params Params) StatusCode {
	return f(entity, commandID, params)
}
