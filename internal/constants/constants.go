package constants

import "time"

// entity ids exposed by the driver
const LightEntityID = "my_unique_light_id"
const ButtonEntityID = "my_button"
const MediaPlayerEntityID = "test_mediaplayer"

// light commands
const LightCommandOn = "on"
const LightCommandOff = "off"
const LightCommandToggle = "toggle"

// button commands
const ButtonCommandPush = "push"

// media player commands
const MediaPlayerCommandOn = "on"
const MediaPlayerCommandOff = "off"
const MediaPlayerCommandPlayPause = "play_pause"
const MediaPlayerCommandSelectSource = "select_source"
const MediaPlayerCommandHome = "home"
const MediaPlayerCommandMenu = "menu"

// default brightness per light transition when no parameter is given
const BrightnessToggleOn = 255
const BrightnessToggleOff = 0
const BrightnessOn = 127
const BrightnessOff = 0

const MaxBrightness = 255
const MaxVolume = 100

// volume the media player is set to whenever the light is switched on
const LightOnMediaPlayerVolume = 24

// command parameter names
const ParamBrightness = "brightness"

// attribute names
const AttributeState = "state"
const AttributeBrightness = "brightness"
const AttributeVolume = "volume"

// event stream names
const StreamEntities = "entities"
const StreamDevice = "device"

// size of each registry change subscriber buffer
const ChangeBufferSize = 32

const ShutdownTimeout = 5 * time.Second
