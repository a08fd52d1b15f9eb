package wildfire

import (
	"math"
	"strconv"

	"wildfire-ca/internal/core"
)

// Parameters reports the weather inputs and the state of the fire.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	stats := s.fire.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Weather",
			Params: []core.Parameter{
				floatParam("wind_speed", "Wind speed", s.cfg.WindSpeed),
				floatParam("wind_direction", "Wind direction", s.cfg.WindDirection),
				floatParam("moisture", "Moisture", s.cfg.Moisture),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("tick_ms", "Tick (ms)", s.cfg.TickMS),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", s.fire.Ticks()),
				intParam("igniting", "Igniting", stats.Count(Igniting)),
				intParam("burning", "Burning", stats.Count(Burning)),
				intParam("smoldering", "Smoldering", stats.Count(Smoldering)),
				intParam("ash", "Ash", stats.Count(Ash)),
				floatParam("burned", "Burned fraction", roundTo(stats.BurnedFraction(), 4)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the inputs the front ends may adjust.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wind_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "wind_direction", Label: "Wind direction", Type: core.ParamTypeFloat, Step: 15, Min: 0, Max: 360, HasMin: true, HasMax: true, Wrap: true},
		{Key: "moisture", Label: "Moisture", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "tick_ms", Label: "Tick (ms)", Type: core.ParamTypeInt, Step: 25, Min: 25, Max: 2000, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a weather input. The change takes effect on the
// next step.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "wind_speed":
		if value < 0 {
			value = 0
		}
		s.cfg.WindSpeed = value
	case "wind_direction":
		s.cfg.WindDirection = value
	case "moisture":
		s.cfg.Moisture = value
	case "tick_ms":
		return s.SetIntParameter(key, int(math.Round(value)))
	default:
		return false
	}
	s.applyWeather()
	return true
}

// SetIntParameter updates integer tunables.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "tick_ms":
		if value <= 0 {
			return false
		}
		s.cfg.TickMS = value
		return true
	}
	return false
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
