package physics

import "github.com/jakecoffman/cp"

const (
	DefaultGroundSensorWidthRatio = 0.5
	DefaultGroundSensorHeight     = 0.04
)

// HitBox is a box body with an extra sensor fixture along its bottom edge
// used to detect ground contact.
type HitBox struct {
	Box
	sensorName   string
	sensorHeight float64
	widthRatio   float64
	sensor       *cp.Shape
}

func NewHitBox(x, y, width, height float64) *HitBox {
	h := &HitBox{
		Box:          Box{width: width, height: height},
		sensorHeight: DefaultGroundSensorHeight,
		widthRatio:   DefaultGroundSensorWidthRatio,
	}
	h.Base = newBase(x, y, h)
	return h
}

func (h *HitBox) makeFixtures(body *cp.Body) []fixture {
	fixtures := h.Box.makeFixtures(body)
	if len(fixtures) == 0 {
		h.sensor = nil
		return nil
	}
	hw := h.widthRatio * h.width / 2
	cy := -h.height/2 + h.sensorHeight/1.5
	sensor := cp.NewBox2(body, cp.BB{L: -hw, B: cy - h.sensorHeight, R: hw, T: cy + h.sensorHeight}, 0)
	sensor.SetSensor(true)
	sensor.UserData = h.sensorName
	h.sensor = sensor
	return append(fixtures, fixture{shape: sensor, reserved: true})
}

// GroundSensor returns the live sensor fixture, or nil while detached.
func (h *HitBox) GroundSensor() *cp.Shape {
	if !h.Attached() {
		return nil
	}
	return h.sensor
}

func (h *HitBox) GroundSensorName() string { return h.sensorName }

func (h *HitBox) SetGroundSensorName(name string) {
	h.sensorName = name
	if h.sensor != nil && h.Attached() {
		h.sensor.UserData = name
	}
}

func (h *HitBox) GroundSensorHeight() float64 { return h.sensorHeight }

func (h *HitBox) SetGroundSensorHeight(height float64) {
	h.sensorHeight = height
	h.MarkDirty(true)
}

func (h *HitBox) GroundSensorWidthRatio() float64 { return h.widthRatio }

func (h *HitBox) SetGroundSensorWidthRatio(ratio float64) {
	h.widthRatio = ratio
	h.MarkDirty(true)
}
