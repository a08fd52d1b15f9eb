package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// Float parses the parameter value. Non-numeric values report false.
func (p Parameter) Float() (float64, bool) {
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes the current parameter snapshot of a sim.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool

	// Wrap makes values past Max continue from Min, as for compass bearings.
	Wrap bool
}

// Clamp applies the control bounds to v.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Wrap && c.HasMin && c.HasMax && c.Max > c.Min {
		span := c.Max - c.Min
		for v < c.Min {
			v += span
		}
		for v >= c.Max {
			v -= span
		}
		return v
	}
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// Nudge moves the parameter behind ctrl by direction steps, reading the
// current value from provider and writing through setter. It reports whether
// the simulation accepted the new value.
func Nudge(provider ParameterProvider, setter FloatParameterSetter, ctrl ParameterControl, direction int) bool {
	if provider == nil || setter == nil || direction == 0 {
		return false
	}
	param, ok := provider.Parameters().Lookup(ctrl.Key)
	if !ok {
		return false
	}
	current, ok := param.Float()
	if !ok {
		return false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	return setter.SetFloatParameter(ctrl.Key, ctrl.Clamp(current+float64(direction)*step))
}
