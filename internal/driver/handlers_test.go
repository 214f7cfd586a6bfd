package driver_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/driver"
	"github.com/wheelibin/light-driver/internal/models"
	"github.com/wheelibin/light-driver/mocks"
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func lightWith(state models.LightState, brightness int) models.Entity {
	e := driver.NewLightEntity()
	e.Attributes = models.LightAttributes{State: state, Brightness: brightness}
	return e
}

func lightUpdate(state models.LightState, brightness int) models.LightUpdate {
	return models.LightUpdate{State: lo.ToPtr(state), Brightness: lo.ToPtr(brightness)}
}

func Test_LightHandler(t *testing.T) {

	tests := []struct {
		name         string
		current      models.LightState
		cmd          string
		params       models.Params
		wantState    models.LightState
		wantBright   int
		wantMPVolume bool
	}{
		{name: "toggle off light: should turn on at full brightness", current: models.LightStateOff, cmd: constants.LightCommandToggle, wantState: models.LightStateOn, wantBright: 255},
		{name: "toggle off light with brightness: should use it", current: models.LightStateOff, cmd: constants.LightCommandToggle, params: models.Params{"brightness": 80}, wantState: models.LightStateOn, wantBright: 80},
		{name: "toggle on light: should turn off at zero brightness", current: models.LightStateOn, cmd: constants.LightCommandToggle, wantState: models.LightStateOff, wantBright: 0},
		{name: "toggle on light with brightness: should use it", current: models.LightStateOn, cmd: constants.LightCommandToggle, params: models.Params{"brightness": 30}, wantState: models.LightStateOff, wantBright: 30},
		{name: "on: should turn on at half brightness", current: models.LightStateOff, cmd: constants.LightCommandOn, wantState: models.LightStateOn, wantBright: 127, wantMPVolume: true},
		{name: "on while already on: should stay on", current: models.LightStateOn, cmd: constants.LightCommandOn, params: models.Params{"brightness": 200}, wantState: models.LightStateOn, wantBright: 200, wantMPVolume: true},
		{name: "off: should turn off at zero brightness", current: models.LightStateOn, cmd: constants.LightCommandOff, wantState: models.LightStateOff, wantBright: 0},
		{name: "off while already off with brightness: should use it", current: models.LightStateOff, cmd: constants.LightCommandOff, params: models.Params{"brightness": 12}, wantState: models.LightStateOff, wantBright: 12},
		{name: "malformed brightness: should use the default", current: models.LightStateOff, cmd: constants.LightCommandOn, params: models.Params{"brightness": "very"}, wantState: models.LightStateOn, wantBright: 127, wantMPVolume: true},
		{name: "toggle off light with zero brightness: should use the default", current: models.LightStateOff, cmd: constants.LightCommandToggle, params: models.Params{"brightness": 0}, wantState: models.LightStateOn, wantBright: 255},
		{name: "on with zero brightness: should use the default", current: models.LightStateOff, cmd: constants.LightCommandOn, params: models.Params{"brightness": 0}, wantState: models.LightStateOn, wantBright: 127, wantMPVolume: true},
		{name: "brightness out of range: should use the default", current: models.LightStateOn, cmd: constants.LightCommandToggle, params: models.Params{"brightness": 999}, wantState: models.LightStateOff, wantBright: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// arrange
			mockStore := mocks.NewMockDriverEntityStore(t)
			mockStore.On("UpdateAttributes", constants.LightEntityID, lightUpdate(tt.wantState, tt.wantBright)).Return(nil).Once()
			if tt.wantMPVolume {
				mockStore.On("UpdateAttributes", constants.MediaPlayerEntityID, models.MediaPlayerUpdate{Volume: lo.ToPtr(24)}).Return(nil).Once()
			}

			// act
			h := driver.NewLightHandler(newLogger(), mockStore)
			code := h.Handle(lightWith(tt.current, 50), tt.cmd, tt.params)

			// assert
			assert.Equal(t, models.StatusOK, code)
			if !tt.wantMPVolume {
				mockStore.AssertNotCalled(t, "UpdateAttributes", constants.MediaPlayerEntityID, mock.Anything)
			}
		})
	}

	t.Run("unknown command: should return not implemented and change nothing", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)

		h := driver.NewLightHandler(newLogger(), mockStore)
		code := h.Handle(lightWith(models.LightStateOn, 50), "blink", models.Params{"brightness": 10})

		assert.Equal(t, models.StatusNotImplemented, code)
		mockStore.AssertNotCalled(t, "UpdateAttributes", mock.Anything, mock.Anything)
	})

	t.Run("toggle with unknown state: should do nothing", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)

		h := driver.NewLightHandler(newLogger(), mockStore)
		code := h.Handle(lightWith(models.LightStateUnavailable, 50), constants.LightCommandToggle, nil)

		assert.Equal(t, models.StatusOK, code)
		mockStore.AssertNotCalled(t, "UpdateAttributes", mock.Anything, mock.Anything)
	})

	t.Run("toggle without light attributes: should do nothing", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)
		entity := driver.NewLightEntity()
		entity.Attributes = nil

		h := driver.NewLightHandler(newLogger(), mockStore)
		code := h.Handle(entity, constants.LightCommandToggle, nil)

		assert.Equal(t, models.StatusOK, code)
	})

	t.Run("store error: should still report ok", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)
		mockStore.On("UpdateAttributes", constants.LightEntityID, mock.Anything).Return(fmt.Errorf("an error"))
		mockStore.On("UpdateAttributes", constants.MediaPlayerEntityID, mock.Anything).Return(fmt.Errorf("an error"))

		h := driver.NewLightHandler(newLogger(), mockStore)
		code := h.Handle(lightWith(models.LightStateOff, 0), constants.LightCommandOn, nil)

		assert.Equal(t, models.StatusOK, code)
	})
}

func Test_SharedHandler(t *testing.T) {

	t.Run("push with light off: should toggle the light on", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)
		mockStore.On("GetConfigured", constants.LightEntityID).Return(lightWith(models.LightStateOff, 0), true)
		mockStore.On("UpdateAttributes", constants.LightEntityID, lightUpdate(models.LightStateOn, 255)).Return(nil).Once()

		light := driver.NewLightHandler(newLogger(), mockStore)
		h := driver.NewSharedHandler(newLogger(), mockStore, light)
		code := h.Handle(driver.NewButtonEntity(), constants.ButtonCommandPush, nil)

		assert.Equal(t, models.StatusOK, code)
	})

	t.Run("push with light on: should toggle the light off", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)
		mockStore.On("GetConfigured", constants.LightEntityID).Return(lightWith(models.LightStateOn, 127), true)
		mockStore.On("UpdateAttributes", constants.LightEntityID, lightUpdate(models.LightStateOff, 0)).Return(nil).Once()

		light := driver.NewLightHandler(newLogger(), mockStore)
		h := driver.NewSharedHandler(newLogger(), mockStore, light)
		code := h.Handle(driver.NewButtonEntity(), constants.ButtonCommandPush, models.Params{"brightness": 10})

		assert.Equal(t, models.StatusOK, code)
	})

	t.Run("push without a light: should report ok and change nothing", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)
		mockStore.On("GetConfigured", constants.LightEntityID).Return(models.Entity{}, false)

		light := driver.NewLightHandler(newLogger(), mockStore)
		h := driver.NewSharedHandler(newLogger(), mockStore, light)
		code := h.Handle(driver.NewButtonEntity(), constants.ButtonCommandPush, nil)

		assert.Equal(t, models.StatusOK, code)
		mockStore.AssertNotCalled(t, "UpdateAttributes", mock.Anything, mock.Anything)
	})

	t.Run("other command on the button: should report ok and do nothing", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockDriverEntityStore(t)

		light := driver.NewLightHandler(newLogger(), mockStore)
		h := driver.NewSharedHandler(newLogger(), mockStore, light)
		code := h.Handle(driver.NewButtonEntity(), "hold", nil)

		assert.Equal(t, models.StatusOK, code)
		mockStore.AssertNotCalled(t, "GetConfigured", mock.Anything)
	})

	for _, cmd := range []string{
		constants.MediaPlayerCommandOn,
		constants.MediaPlayerCommandOff,
		constants.MediaPlayerCommandPlayPause,
		constants.MediaPlayerCommandSelectSource,
		constants.MediaPlayerCommandHome,
		constants.MediaPlayerCommandMenu,
		constants.ButtonCommandPush,
		"anything",
	} {
		cmd := cmd
		t.Run(fmt.Sprintf("media player %s: should report ok and change nothing", cmd), func(t *testing.T) {
			t.Parallel()
			mockStore := mocks.NewMockDriverEntityStore(t)

			light := driver.NewLightHandler(newLogger(), mockStore)
			h := driver.NewSharedHandler(newLogger(), mockStore, light)
			code := h.Handle(driver.NewMediaPlayerEntity(), cmd, models.Params{"source": "Radio"})

			assert.Equal(t, models.StatusOK, code)
			mockStore.AssertNotCalled(t, "UpdateAttributes", mock.Anything, mock.Anything)
		})
	}
}

func Test_Lifecycle(t *testing.T) {

	t.Run("connect: should report connected", func(t *testing.T) {
		t.Parallel()
		mockReporter := mocks.NewMockDriverDeviceStateReporter(t)
		mockReporter.On("SetDeviceState", models.DeviceStateConnected).Return(nil).Once()

		d := driver.NewDriver(newLogger(), mocks.NewMockDriverEntityStore(t), mockReporter)
		assert.NoError(t, d.OnConnect())
	})

	t.Run("disconnect: should report disconnected", func(t *testing.T) {
		t.Parallel()
		mockReporter := mocks.NewMockDriverDeviceStateReporter(t)
		mockReporter.On("SetDeviceState", models.DeviceStateDisconnected).Return(nil).Once()

		d := driver.NewDriver(newLogger(), mocks.NewMockDriverEntityStore(t), mockReporter)
		assert.NoError(t, d.OnDisconnect())
	})

	t.Run("reporting error: should be passed back to the host", func(t *testing.T) {
		t.Parallel()
		mockReporter := mocks.NewMockDriverDeviceStateReporter(t)
		mockReporter.On("SetDeviceState", models.DeviceStateConnected).Return(fmt.Errorf("an error"))

		d := driver.NewDriver(newLogger(), mocks.NewMockDriverEntityStore(t), mockReporter)
		err := d.OnConnect()
		assert.Equal(t, "an error", err.Error())
	})
}
