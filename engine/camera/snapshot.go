package camera

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// DeserializationError reports a snapshot that could not be applied.
type DeserializationError struct {
	// Field is the JSON field at fault, empty when the document itself is malformed.
	Field  string
	Reason string
	Err    error
}

func (e *DeserializationError) Error() string {
	msg := "camera snapshot"
	if e.Field != "" {
		msg += " field " + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// snapshot is the JSON form of a controller. Pointer fields distinguish missing from zero.
type snapshot struct {
	Enabled *bool `json:"enabled"`

	MinDistance     *float64 `json:"minDistance"`
	MaxDistance     *float64 `json:"maxDistance"`
	MinZoom         *float64 `json:"minZoom"`
	MaxZoom         *float64 `json:"maxZoom"`
	MinPolarAngle   *float64 `json:"minPolarAngle"`
	MaxPolarAngle   *float64 `json:"maxPolarAngle"`
	MinAzimuthAngle *float64 `json:"minAzimuthAngle"`
	MaxAzimuthAngle *float64 `json:"maxAzimuthAngle"`

	DampingFactor         *float64 `json:"dampingFactor"`
	DraggingDampingFactor *float64 `json:"draggingDampingFactor"`
	DollySpeed            *float64 `json:"dollySpeed"`
	TruckSpeed            *float64 `json:"truckSpeed"`
	DollyToCursor         *bool    `json:"dollyToCursor"`
	VerticalDragToForward *bool    `json:"verticalDragToForward"`

	Target    []float64 `json:"target"`
	Position  []float64 `json:"position"`
	Target0   []float64 `json:"target0"`
	Position0 []float64 `json:"position0"`

	// Zoom0 is optional; absent keeps the current rest zoom.
	Zoom0 *float64 `json:"zoom0,omitempty"`
}

func (cc *cameraControllerImpl) Serialize() ([]byte, error) {
	c := cc.config
	zoom0 := cc.zoom0
	s := snapshot{
		Enabled: &cc.enabled,

		MinDistance:     limit(c.MinDistance),
		MaxDistance:     limit(c.MaxDistance),
		MinZoom:         limit(c.MinZoom),
		MaxZoom:         limit(c.MaxZoom),
		MinPolarAngle:   limit(c.MinPolarAngle),
		MaxPolarAngle:   limit(c.MaxPolarAngle),
		MinAzimuthAngle: limit(c.MinAzimuthAngle),
		MaxAzimuthAngle: limit(c.MaxAzimuthAngle),

		DampingFactor:         &c.DampingFactor,
		DraggingDampingFactor: &c.DraggingDampingFactor,
		DollySpeed:            &c.DollySpeed,
		TruckSpeed:            &c.TruckSpeed,
		DollyToCursor:         &c.DollyToCursor,
		VerticalDragToForward: &c.VerticalDragToForward,

		Target:    vec(cc.goalTarget),
		Position:  vec(cc.camera.Position()),
		Target0:   vec(cc.target0),
		Position0: vec(cc.position0),
		Zoom0:     &zoom0,
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode camera snapshot: %w", err)
	}
	return data, nil
}

func (cc *cameraControllerImpl) Deserialize(data []byte, transition bool) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return &DeserializationError{Reason: "invalid JSON", Err: err}
	}

	d := snapshotDecoder{}
	enabled := d.flag("enabled", s.Enabled)
	config := Config{
		MinDistance:           d.limit("minDistance", s.MinDistance),
		MaxDistance:           d.limit("maxDistance", s.MaxDistance),
		MinZoom:               d.limit("minZoom", s.MinZoom),
		MaxZoom:               d.limit("maxZoom", s.MaxZoom),
		MinPolarAngle:         d.limit("minPolarAngle", s.MinPolarAngle),
		MaxPolarAngle:         d.limit("maxPolarAngle", s.MaxPolarAngle),
		MinAzimuthAngle:       d.limit("minAzimuthAngle", s.MinAzimuthAngle),
		MaxAzimuthAngle:       d.limit("maxAzimuthAngle", s.MaxAzimuthAngle),
		DampingFactor:         d.number("dampingFactor", s.DampingFactor),
		DraggingDampingFactor: d.number("draggingDampingFactor", s.DraggingDampingFactor),
		DollySpeed:            d.number("dollySpeed", s.DollySpeed),
		TruckSpeed:            d.number("truckSpeed", s.TruckSpeed),
		DollyToCursor:         d.flag("dollyToCursor", s.DollyToCursor),
		VerticalDragToForward: d.flag("verticalDragToForward", s.VerticalDragToForward),
	}
	target := d.vector("target", s.Target)
	position := d.vector("position", s.Position)
	target0 := d.vector("target0", s.Target0)
	position0 := d.vector("position0", s.Position0)
	zoom0 := cc.zoom0
	if s.Zoom0 != nil {
		zoom0 = d.number("zoom0", s.Zoom0)
	}
	if d.err != nil {
		return d.err
	}

	cc.enabled = enabled
	cc.config = config
	cc.target0 = target0
	cc.position0 = position0
	cc.zoom0 = zoom0

	cc.goalTarget = target
	cc.goal = common.SphericalFromVec3(position.Sub(target))
	cc.sanitizeSphericals()
	if !transition {
		cc.currentTarget = cc.goalTarget
		cc.current = cc.goal
	}
	cc.needsUpdate = true
	return nil
}

// snapshotDecoder validates snapshot fields, keeping the first error.
type snapshotDecoder struct {
	err error
}

func (d *snapshotDecoder) fail(field, reason string) {
	if d.err == nil {
		d.err = &DeserializationError{Field: field, Reason: reason}
	}
}

func (d *snapshotDecoder) flag(field string, v *bool) bool {
	if v == nil {
		d.fail(field, "missing")
		return false
	}
	return *v
}

func (d *snapshotDecoder) number(field string, v *float64) float64 {
	if v == nil {
		d.fail(field, "missing")
		return 0
	}
	if math.IsNaN(*v) {
		d.fail(field, "not a number")
		return 0
	}
	return *v
}

func (d *snapshotDecoder) limit(field string, v *float64) float64 {
	return common.MaxToInfinity(d.number(field, v))
}

func (d *snapshotDecoder) vector(field string, v []float64) mgl64.Vec3 {
	if v == nil {
		d.fail(field, "missing")
		return mgl64.Vec3{}
	}
	if len(v) != 3 {
		d.fail(field, fmt.Sprintf("expected 3 components, got %d", len(v)))
		return mgl64.Vec3{}
	}
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			d.fail(field, "components must be finite")
			return mgl64.Vec3{}
		}
	}
	return mgl64.Vec3{v[0], v[1], v[2]}
}

func limit(v float64) *float64 {
	encoded := common.InfinityToMax(v)
	return &encoded
}

func vec(v mgl64.Vec3) []float64 {
	return []float64{v[0], v[1], v[2]}
}
