package models

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type EntityType string

const (
	EntityTypeLight       EntityType = "light"
	EntityTypeButton      EntityType = "button"
	EntityTypeMediaPlayer EntityType = "media_player"
)

type Feature string

// light features
const (
	LightFeatureOnOff  Feature = "on_off"
	LightFeatureToggle Feature = "toggle"
	LightFeatureDim    Feature = "dim"
)

// button features
const ButtonFeaturePress Feature = "press"

// media player features
const (
	MediaPlayerFeatureOnOff           Feature = "on_off"
	MediaPlayerFeatureDpad            Feature = "dpad"
	MediaPlayerFeatureHome            Feature = "home"
	MediaPlayerFeatureMenu            Feature = "menu"
	MediaPlayerFeatureChannelSwitcher Feature = "channel_switcher"
	MediaPlayerFeatureSelectSource    Feature = "select_source"
	MediaPlayerFeatureColorButtons    Feature = "color_buttons"
	MediaPlayerFeaturePlayPause       Feature = "play_pause"
)

var featuresByType = map[EntityType][]Feature{
	EntityTypeLight:  {LightFeatureOnOff, LightFeatureToggle, LightFeatureDim},
	EntityTypeButton: {ButtonFeaturePress},
	EntityTypeMediaPlayer: {
		MediaPlayerFeatureOnOff,
		MediaPlayerFeatureDpad,
		MediaPlayerFeatureHome,
		MediaPlayerFeatureMenu,
		MediaPlayerFeatureChannelSwitcher,
		MediaPlayerFeatureSelectSource,
		MediaPlayerFeatureColorButtons,
		MediaPlayerFeaturePlayPause,
	},
}

// media player device classes
const (
	MediaPlayerDeviceClassReceiver     = "receiver"
	MediaPlayerDeviceClassSetTopBox    = "set_top_box"
	MediaPlayerDeviceClassSpeaker      = "speaker"
	MediaPlayerDeviceClassStreamingBox = "streaming_box"
	MediaPlayerDeviceClassTV           = "tv"
)

var deviceClassesByType = map[EntityType][]string{
	EntityTypeMediaPlayer: {
		MediaPlayerDeviceClassReceiver,
		MediaPlayerDeviceClassSetTopBox,
		MediaPlayerDeviceClassSpeaker,
		MediaPlayerDeviceClassStreamingBox,
		MediaPlayerDeviceClassTV,
	},
}

// LanguageText maps a language code to a localised string
type LanguageText map[string]string

// Entity is a virtual device exposed to the host.
// Only Attributes change after the entity has been created.
type Entity struct {
	ID          string       `json:"entity_id"`
	Type        EntityType   `json:"entity_type"`
	Name        LanguageText `json:"name"`
	DeviceClass string       `json:"device_class,omitempty"`
	Features    []Feature    `json:"features"`
	Area        string       `json:"area,omitempty"`
	Attributes  Attributes   `json:"attributes"`
}

func (e Entity) HasFeature(f Feature) bool {
	return slices.Contains(e.Features, f)
}

// DisplayName returns the english name, falling back to the first language
// in alphabetical order and finally to the id
func (e Entity) DisplayName() string {
	if n, ok := e.Name["en"]; ok {
		return n
	}
	languages := lo.Keys(e.Name)
	if len(languages) == 0 {
		return e.ID
	}
	slices.Sort(languages)
	return e.Name[languages[0]]
}

// Validate checks the entity's identity, features and initial attributes
func (e Entity) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	}
	if len(e.Name) == 0 {
		return fmt.Errorf("%w (%s): at least one name is required", ErrInvalidEntity, e.ID)
	}

	validFeatures, ok := featuresByType[e.Type]
	if !ok {
		return fmt.Errorf("%w (%s): unknown entity type %q", ErrInvalidEntity, e.ID, e.Type)
	}
	for _, f := range e.Features {
		if !slices.Contains(validFeatures, f) {
			return fmt.Errorf("%w (%s): feature %q is not valid for a %s", ErrInvalidEntity, e.ID, f, e.Type)
		}
	}

	if e.DeviceClass != "" && !slices.Contains(deviceClassesByType[e.Type], e.DeviceClass) {
		return fmt.Errorf("%w (%s): device class %q is not valid for a %s", ErrInvalidEntity, e.ID, e.DeviceClass, e.Type)
	}

	if e.Attributes == nil {
		return fmt.Errorf("%w (%s): attributes are required", ErrInvalidEntity, e.ID)
	}
	if e.Attributes.EntityType() != e.Type {
		return fmt.Errorf("%w (%s): %s attributes on a %s", ErrAttributeMismatch, e.ID, e.Attributes.EntityType(), e.Type)
	}
	if err := e.Attributes.Validate(); err != nil {
		return fmt.Errorf("entity (%s): %w", e.ID, err)
	}

	return nil
}

// an attribute change applied by the registry
type EntityChange struct {
	EntityID   string     `json:"entity_id"`
	Type       EntityType `json:"entity_type"`
	Attributes Attributes `json:"attributes"`
}

// EntityRecord is an entity as held by the registry store
type EntityRecord struct {
	Entity     Entity
	Configured bool
}
