package driver

import (
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/models"
)

// NewLightEntity creates the dimmable light. It starts off, with its brightness set.
func NewLightEntity() models.Entity {
	return models.Entity{
		ID:   constants.LightEntityID,
		Type: models.EntityTypeLight,
		Name: models.LanguageText{
			"de": "Mein Lieblingslicht",
			"en": "My favorite light",
		},
		Features: []models.Feature{models.LightFeatureOnOff, models.LightFeatureDim},
		Attributes: models.LightAttributes{
			State:      models.LightStateOff,
			Brightness: 0,
		},
	}
}

func NewButtonEntity() models.Entity {
	return models.Entity{
		ID:         constants.ButtonEntityID,
		Type:       models.EntityTypeButton,
		Name:       models.LanguageText{"en": "Push the button!"},
		Features:   []models.Feature{models.ButtonFeaturePress},
		Area:       "test lab",
		Attributes: models.ButtonAttributes{},
	}
}

func NewMediaPlayerEntity() models.Entity {
	return models.Entity{
		ID:          constants.MediaPlayerEntityID,
		Type:        models.EntityTypeMediaPlayer,
		Name:        models.LanguageText{"en": "Foobar MediaPlayer"},
		DeviceClass: models.MediaPlayerDeviceClassStreamingBox,
		Features: []models.Feature{
			models.MediaPlayerFeatureOnOff,
			models.MediaPlayerFeatureDpad,
			models.MediaPlayerFeatureHome,
			models.MediaPlayerFeatureMenu,
			models.MediaPlayerFeatureChannelSwitcher,
			models.MediaPlayerFeatureSelectSource,
			models.MediaPlayerFeatureColorButtons,
			models.MediaPlayerFeaturePlayPause,
		},
		Attributes: models.MediaPlayerAttributes{
			State: models.MediaPlayerStateOn,
			SourceList: []string{
				"Radio",
				"Streaming",
				"Favorite 1",
				"Favorite 2",
				"Favorite 3",
			},
		},
	}
}
