package models

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/wheelibin/light-driver/internal/constants"
)

// Attributes is the mutable state of an entity, one record type per entity type
type Attributes interface {
	EntityType() EntityType
	Validate() error
	// Apply merges a partial update and returns the resulting attributes.
	// The receiver is left untouched.
	Apply(update AttributeUpdate) (Attributes, error)
}

// AttributeUpdate is a partial change to an entity's attributes, nil fields are left as they are
type AttributeUpdate interface {
	EntityType() EntityType
	Validate() error
}

type LightState string

const (
	LightStateOn          LightState = "ON"
	LightStateOff         LightState = "OFF"
	LightStateUnavailable LightState = "UNAVAILABLE"
	LightStateUnknown     LightState = "UNKNOWN"
)

func (s LightState) valid() bool {
	switch s {
	case LightStateOn, LightStateOff, LightStateUnavailable, LightStateUnknown:
		return true
	}
	return false
}

type MediaPlayerState string

const (
	MediaPlayerStateOn          MediaPlayerState = "ON"
	MediaPlayerStateOff         MediaPlayerState = "OFF"
	MediaPlayerStatePlaying     MediaPlayerState = "PLAYING"
	MediaPlayerStatePaused      MediaPlayerState = "PAUSED"
	MediaPlayerStateStandby     MediaPlayerState = "STANDBY"
	MediaPlayerStateBuffering   MediaPlayerState = "BUFFERING"
	MediaPlayerStateUnavailable MediaPlayerState = "UNAVAILABLE"
	MediaPlayerStateUnknown     MediaPlayerState = "UNKNOWN"
)

func (s MediaPlayerState) valid() bool {
	switch s {
	case MediaPlayerStateOn, MediaPlayerStateOff, MediaPlayerStatePlaying, MediaPlayerStatePaused,
		MediaPlayerStateStandby, MediaPlayerStateBuffering, MediaPlayerStateUnavailable, MediaPlayerStateUnknown:
		return true
	}
	return false
}

func validateBrightness(b int) error {
	if b < 0 || b > constants.MaxBrightness {
		return fmt.Errorf("%w: %s %d outside [0, %d]", ErrInvalidAttribute, constants.AttributeBrightness, b, constants.MaxBrightness)
	}
	return nil
}

func validateVolume(v int) error {
	if v < 0 || v > constants.MaxVolume {
		return fmt.Errorf("%w: %s %d outside [0, %d]", ErrInvalidAttribute, constants.AttributeVolume, v, constants.MaxVolume)
	}
	return nil
}

func mismatch(want EntityType, got AttributeUpdate) error {
	if got == nil {
		return fmt.Errorf("%w: nil update for a %s", ErrAttributeMismatch, want)
	}
	return fmt.Errorf("%w: %s update for a %s", ErrAttributeMismatch, got.EntityType(), want)
}

// light

type LightAttributes struct {
	State      LightState `json:"state"`
	Brightness int        `json:"brightness"`
}

func (LightAttributes) EntityType() EntityType { return EntityTypeLight }

func (a LightAttributes) Validate() error {
	if !a.State.valid() {
		return fmt.Errorf("%w: light %s %q", ErrInvalidAttribute, constants.AttributeState, a.State)
	}
	return validateBrightness(a.Brightness)
}

func (a LightAttributes) Apply(update AttributeUpdate) (Attributes, error) {
	u, ok := update.(LightUpdate)
	if !ok {
		return nil, mismatch(EntityTypeLight, update)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.State != nil {
		a.State = *u.State
	}
	if u.Brightness != nil {
		a.Brightness = *u.Brightness
	}
	return a, nil
}

type LightUpdate struct {
	State      *LightState
	Brightness *int
}

func (LightUpdate) EntityType() EntityType { return EntityTypeLight }

func (u LightUpdate) Validate() error {
	if u.State != nil && !u.State.valid() {
		return fmt.Errorf("%w: light %s %q", ErrInvalidAttribute, constants.AttributeState, *u.State)
	}
	if u.Brightness != nil {
		return validateBrightness(*u.Brightness)
	}
	return nil
}

// button

type ButtonAttributes struct{}

func (ButtonAttributes) EntityType() EntityType { return EntityTypeButton }

func (ButtonAttributes) Validate() error { return nil }

// Apply always fails, a button has nothing to update
func (a ButtonAttributes) Apply(update AttributeUpdate) (Attributes, error) {
	return nil, mismatch(EntityTypeButton, update)
}

// media player

type MediaPlayerAttributes struct {
	State      MediaPlayerState `json:"state"`
	SourceList []string         `json:"source_list"`
	Volume     int              `json:"volume"`
}

func (MediaPlayerAttributes) EntityType() EntityType { return EntityTypeMediaPlayer }

func (a MediaPlayerAttributes) Validate() error {
	if !a.State.valid() {
		return fmt.Errorf("%w: media player %s %q", ErrInvalidAttribute, constants.AttributeState, a.State)
	}
	return validateVolume(a.Volume)
}

func (a MediaPlayerAttributes) Apply(update AttributeUpdate) (Attributes, error) {
	u, ok := update.(MediaPlayerUpdate)
	if !ok {
		return nil, mismatch(EntityTypeMediaPlayer, update)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	a.SourceList = slices.Clone(a.SourceList)
	if u.State != nil {
		a.State = *u.State
	}
	if u.SourceList != nil {
		a.SourceList = slices.Clone(u.SourceList)
	}
	if u.Volume != nil {
		a.Volume = *u.Volume
	}
	return a, nil
}

type MediaPlayerUpdate struct {
	State      *MediaPlayerState
	SourceList []string
	Volume     *int
}

func (MediaPlayerUpdate) EntityType() EntityType { return EntityTypeMediaPlayer }

func (u MediaPlayerUpdate) Validate() error {
	if u.State != nil && !u.State.valid() {
		return fmt.Errorf("%w: media player %s %q", ErrInvalidAttribute, constants.AttributeState, *u.State)
	}
	if u.Volume != nil {
		return validateVolume(*u.Volume)
	}
	return nil
}

// DecodeAttributes restores the attribute record of the given entity type from its json form
func DecodeAttributes(entityType EntityType, data []byte) (Attributes, error) {
	var (
		attrs Attributes
		err   error
	)
	switch entityType {
	case EntityTypeLight:
		a := LightAttributes{}
		err = json.Unmarshal(data, &a)
		attrs = a
	case EntityTypeButton:
		a := ButtonAttributes{}
		err = json.Unmarshal(data, &a)
		attrs = a
	case EntityTypeMediaPlayer:
		a := MediaPlayerAttributes{}
		err = json.Unmarshal(data, &a)
		attrs = a
	default:
		return nil, fmt.Errorf("%w: unknown entity type %q", ErrInvalidEntity, entityType)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s attributes: %w", entityType, err)
	}
	return attrs, nil
}
