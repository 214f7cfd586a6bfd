package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wheelibin/light-driver/internal/models"
)

func Test_ParamsBrightness(t *testing.T) {

	tests := []struct {
		name   string
		params models.Params
		want   int
		wantOk bool
	}{
		{name: "nil params", params: nil},
		{name: "no brightness", params: models.Params{"other": 3}},
		{name: "nil brightness", params: models.Params{"brightness": nil}},
		{name: "int", params: models.Params{"brightness": 42}, want: 42, wantOk: true},
		{name: "zero counts as absent", params: models.Params{"brightness": 0}},
		{name: "zero string counts as absent", params: models.Params{"brightness": "0"}},
		{name: "lower bound", params: models.Params{"brightness": 1}, want: 1, wantOk: true},
		{name: "json number as float", params: models.Params{"brightness": float64(200)}, want: 200, wantOk: true},
		{name: "json.Number", params: models.Params{"brightness": json.Number("17")}, want: 17, wantOk: true},
		{name: "numeric string", params: models.Params{"brightness": "99"}, want: 99, wantOk: true},
		{name: "zero padded string is decimal", params: models.Params{"brightness": "010"}, want: 10, wantOk: true},
		{name: "hex string", params: models.Params{"brightness": "0x10"}},
		{name: "upper bound", params: models.Params{"brightness": 255}, want: 255, wantOk: true},
		{name: "above range", params: models.Params{"brightness": 256}},
		{name: "negative", params: models.Params{"brightness": -5}},
		{name: "not a number", params: models.Params{"brightness": "bright"}},
		{name: "bool", params: models.Params{"brightness": true}},
		{name: "object", params: models.Params{"brightness": map[string]any{"v": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.params.Brightness()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParamsBrightnessOr(t *testing.T) {
	assert.Equal(t, 127, models.Params(nil).BrightnessOr(127))
	assert.Equal(t, 10, models.Params{"brightness": 10}.BrightnessOr(127))
	assert.Equal(t, 127, models.Params{"brightness": 1000}.BrightnessOr(127))
	assert.Equal(t, 255, models.Params{"brightness": 0}.BrightnessOr(255))
}
