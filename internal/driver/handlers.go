package driver

import (
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/models"
)

// LightHandler runs the light's on/off/toggle state machine.
// The current state is read from the entity snapshot it is given, all changes go through the store.
type LightHandler struct {
	logger *log.Logger
	store  entityStore
}

func NewLightHandler(logger *log.Logger, store entityStore) *LightHandler {
	return &LightHandler{logger: logger, store: store}
}

func (h *LightHandler) Handle(entity models.Entity, commandID string, params models.Params) models.StatusCode {
	h.logger.Info("Got light command request", "entity", entity.ID, "cmd", commandID)

	// a snapshot without light attributes has no state, so toggle leaves it alone
	current, _ := entity.Attributes.(models.LightAttributes)

	switch commandID {
	case constants.LightCommandToggle:
		switch current.State {
		case models.LightStateOff:
			h.update(entity.ID, models.LightStateOn, params.BrightnessOr(constants.BrightnessToggleOn))
		case models.LightStateOn:
			h.update(entity.ID, models.LightStateOff, params.BrightnessOr(constants.BrightnessToggleOff))
		default:
			h.logger.Debug("Not toggling light in unknown state", "entity", entity.ID, "state", current.State)
		}

	case constants.LightCommandOn:
		h.update(entity.ID, models.LightStateOn, params.BrightnessOr(constants.BrightnessOn))
		// switching the light on also sets the media player volume, if there is one
		h.setMediaPlayerVolume(constants.LightOnMediaPlayerVolume)

	case constants.LightCommandOff:
		h.update(entity.ID, models.LightStateOff, params.BrightnessOr(constants.BrightnessOff))

	default:
		return models.StatusNotImplemented
	}

	return models.StatusOK
}

func (h *LightHandler) update(id string, state models.LightState, brightness int) {
	err := h.store.UpdateAttributes(id, models.LightUpdate{State: &state, Brightness: &brightness})
	if err != nil {
		h.logger.Error("error updating light", "entity", id, "err", err)
	}
}

func (h *LightHandler) setMediaPlayerVolume(volume int) {
	err := h.store.UpdateAttributes(constants.MediaPlayerEntityID, models.MediaPlayerUpdate{Volume: lo.ToPtr(volume)})
	if err != nil {
		h.logger.Error("error updating media player volume", "entity", constants.MediaPlayerEntityID, "err", err)
	}
}

var mediaPlayerCommands = []string{
	constants.MediaPlayerCommandOn,
	constants.MediaPlayerCommandOff,
	constants.MediaPlayerCommandPlayPause,
	constants.MediaPlayerCommandSelectSource,
	constants.MediaPlayerCommandHome,
	constants.MediaPlayerCommandMenu,
}

// SharedHandler acknowledges commands for entities without their own logic.
// Pushing the button toggles the light.
type SharedHandler struct {
	logger *log.Logger
	store  entityStore
	light  *LightHandler
}

func NewSharedHandler(logger *log.Logger, store entityStore, light *LightHandler) *SharedHandler {
	return &SharedHandler{logger: logger, store: store, light: light}
}

func (h *SharedHandler) Handle(entity models.Entity, commandID string, params models.Params) models.StatusCode {
	if entity.ID == constants.ButtonEntityID && commandID == constants.ButtonCommandPush {
		h.logger.Info("Got push request: toggling light", "entity", entity.ID)

		// the press still counts as handled when there is no light
		if light, ok := h.store.GetConfigured(constants.LightEntityID); ok {
			h.light.Handle(light, constants.LightCommandToggle, nil)
		}
		return models.StatusOK
	}

	if entity.ID == constants.MediaPlayerEntityID {
		if lo.Contains(mediaPlayerCommands, commandID) {
			h.logger.Info("Got media-player command request", "entity", entity.ID, "cmd", commandID, "params", params)
		} else {
			h.logger.Warn("Got unknown media-player command", "entity", entity.ID, "cmd", commandID, "params", params)
		}
		return models.StatusOK
	}

	h.logger.Info("Got command request", "entity", entity.ID, "cmd", commandID)
	return models.StatusOK
}
