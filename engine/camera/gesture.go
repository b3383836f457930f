package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/event"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// GestureMode identifies which drag gesture is in progress.
type GestureMode int

const (
	GestureIdle GestureMode = iota
	GestureRotate
	GestureDolly
	GestureTruck
	GestureTouchRotate
	GestureTouchDollyTruck
	GestureTouchTruck
)

func (m GestureMode) String() string {
	switch m {
	case GestureIdle:
		return "idle"
	case GestureRotate:
		return "rotate"
	case GestureDolly:
		return "dolly"
	case GestureTruck:
		return "truck"
	case GestureTouchRotate:
		return "touch-rotate"
	case GestureTouchDollyTruck:
		return "touch-dolly-truck"
	case GestureTouchTruck:
		return "touch-truck"
	default:
		return "unknown"
	}
}

func (m GestureMode) isPointer() bool {
	return m == GestureRotate || m == GestureDolly || m == GestureTruck
}

func (m GestureMode) isTouch() bool {
	return m == GestureTouchRotate || m == GestureTouchDollyTruck || m == GestureTouchTruck
}

// touchDollyDivisor scales the change in pinch distance into a dolly step.
const touchDollyDivisor = 8.0

// dragState is the bookkeeping for one drag gesture.
type dragState struct {
	// previous centroid in surface pixels
	x, y float64
	// previous inter-finger distance, two-finger gestures only
	pinchDistance float64
	// surface bounds captured at drag start
	rect input.Rect
}

func (cc *cameraControllerImpl) Attach(surface input.Surface) {
	cc.detachSurface()
	cc.surface = surface
	cc.detach = []func(){
		surface.OnPointerDown(cc.onPointerDown),
		surface.OnPointerMove(cc.onPointerMove),
		surface.OnPointerUp(cc.onPointerUp),
		surface.OnTouchStart(cc.onTouchStart),
		surface.OnTouchMove(cc.onTouchMove),
		surface.OnTouchEnd(cc.onTouchEnd),
		surface.OnWheel(cc.onWheel),
	}
}

func (cc *cameraControllerImpl) Dispose() {
	cc.detachSurface()
	cc.surface = nil
	if cc.mode != GestureIdle {
		cc.endDragging(nil)
	}
}

func (cc *cameraControllerImpl) detachSurface() {
	for _, remove := range cc.detach {
		remove()
	}
	cc.detach = nil
}

func (cc *cameraControllerImpl) onPointerDown(e input.PointerEvent) {
	if !cc.enabled {
		return
	}
	prev := cc.mode
	switch e.Button {
	case input.ButtonLeft:
		cc.mode = GestureRotate
	case input.ButtonMiddle:
		cc.mode = GestureDolly
	case input.ButtonRight:
		cc.mode = GestureTruck
	}
	if cc.mode != prev {
		cc.startDragging(e.ClientX, e.ClientY, e)
	}
}

func (cc *cameraControllerImpl) onPointerMove(e input.PointerEvent) {
	if !cc.enabled || !cc.mode.isPointer() {
		return
	}
	dx := cc.drag.x - e.ClientX
	dy := cc.drag.y - e.ClientY
	cc.drag.x, cc.drag.y = e.ClientX, e.ClientY

	switch cc.mode {
	case GestureRotate:
		cc.rotateByDrag(dx, dy)
	case GestureDolly:
		// middle-button drag is reserved; the wheel does the dollying
	case GestureTruck:
		cc.truckInternal(dx, dy)
	}
	cc.DispatchEvent(event.Event{Type: EventControl, OriginalEvent: e})
}

func (cc *cameraControllerImpl) onPointerUp(e input.PointerEvent) {
	if !cc.enabled || cc.mode == GestureIdle {
		return
	}
	cc.endDragging(e)
}

func (cc *cameraControllerImpl) onTouchStart(e input.TouchEvent) {
	if !cc.enabled {
		return
	}
	prev := cc.mode
	cc.mode = touchMode(len(e.Touches), cc.mode)
	if cc.mode != prev {
		cc.startTouchDragging(e)
	}
}

func (cc *cameraControllerImpl) onTouchMove(e input.TouchEvent) {
	if !cc.enabled || !cc.mode.isTouch() {
		return
	}
	x, y := e.Centroid()
	dx := cc.drag.x - x
	dy := cc.drag.y - y
	cc.drag.x, cc.drag.y = x, y

	switch cc.mode {
	case GestureTouchRotate:
		cc.rotateByDrag(dx, dy)
	case GestureTouchDollyTruck:
		if len(e.Touches) >= 2 {
			distance := pinchDistance(e)
			ndc := cc.surfaceToNDC(x, y)
			cc.dollyInternal((distance-cc.drag.pinchDistance)/touchDollyDivisor, ndc)
			cc.drag.pinchDistance = distance
		}
		cc.truckInternal(dx, dy)
	case GestureTouchTruck:
		cc.truckInternal(dx, dy)
	}
	cc.DispatchEvent(event.Event{Type: EventControl, OriginalEvent: e})
}

func (cc *cameraControllerImpl) onTouchEnd(e input.TouchEvent) {
	if !cc.enabled {
		return
	}
	if len(e.Touches) == 0 {
		if cc.mode != GestureIdle {
			cc.endDragging(e)
		}
		return
	}

	prev := cc.mode
	cc.mode = touchMode(len(e.Touches), cc.mode)
	if cc.mode != prev {
		cc.startTouchDragging(e)
		return
	}
	// same mode with fewer contacts: rebase so the centroid jump is not read as motion
	cc.drag.x, cc.drag.y = e.Centroid()
	if len(e.Touches) >= 2 {
		cc.drag.pinchDistance = pinchDistance(e)
	}
}

func (cc *cameraControllerImpl) onWheel(e input.WheelEvent) {
	if !cc.enabled {
		return
	}
	delta := cc.wheel.Normalize(e)
	var ndc mgl64.Vec2
	if cc.config.DollyToCursor && cc.surface != nil {
		rect := cc.surface.Rect()
		if rect.Width > 0 && rect.Height > 0 {
			ndc = mgl64.Vec2{
				(e.ClientX-rect.Left)/rect.Width*2 - 1,
				(e.ClientY-rect.Top)/rect.Height*-2 + 1,
			}
		}
	}
	cc.dollyInternal(-delta, ndc)
}

func (cc *cameraControllerImpl) startDragging(x, y float64, original any) {
	cc.drag = dragState{x: x, y: y}
	if cc.surface != nil {
		cc.drag.rect = cc.surface.Rect()
	}
	cc.DispatchEvent(event.Event{Type: EventControlStart, OriginalEvent: original})
}

func (cc *cameraControllerImpl) startTouchDragging(e input.TouchEvent) {
	x, y := e.Centroid()
	cc.startDragging(x, y, e)
	if len(e.Touches) >= 2 {
		cc.drag.pinchDistance = pinchDistance(e)
	}
}

func (cc *cameraControllerImpl) endDragging(original any) {
	cc.mode = GestureIdle
	cc.drag = dragState{}
	cc.DispatchEvent(event.Event{Type: EventControlEnd, OriginalEvent: original})
}

// rotateByDrag turns a pixel drag into rotation: a drag across the full surface is one full turn.
func (cc *cameraControllerImpl) rotateByDrag(dx, dy float64) {
	rect := cc.drag.rect
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	cc.Rotate(2*math.Pi*dx/rect.Width, 2*math.Pi*dy/rect.Height, true)
}

// truckInternal converts a pixel drag into a world-space translation so the point under the cursor
// follows it at the target's depth.
func (cc *cameraControllerImpl) truckInternal(dx, dy float64) {
	rect := cc.drag.rect
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}

	switch cc.camera.Projection() {
	case ProjectionPerspective:
		offset := cc.camera.Position().Sub(cc.currentTarget)
		targetDistance := offset.Len() * math.Tan(cc.camera.Fov()*0.5)
		truckX := cc.config.TruckSpeed * dx * targetDistance / rect.Height
		pedestalY := cc.config.TruckSpeed * dy * targetDistance / rect.Height
		if cc.config.VerticalDragToForward {
			cc.Truck(truckX, 0, true)
			cc.Forward(-pedestalY, true)
		} else {
			cc.Truck(truckX, pedestalY, true)
		}
	case ProjectionOrthographic:
		left, right, top, bottom := cc.camera.OrthoBounds()
		zoom := cc.camera.Zoom()
		cc.Truck(
			dx*(right-left)/zoom/rect.Width,
			dy*(top-bottom)/zoom/rect.Height,
			true,
		)
	}
}

// dollyInternal applies one dolly step. Negative delta moves closer (or zooms in).
func (cc *cameraControllerImpl) dollyInternal(delta float64, ndc mgl64.Vec2) {
	scale := math.Pow(0.95, -delta*cc.config.DollySpeed)

	switch cc.camera.Projection() {
	case ProjectionPerspective:
		prevRadius := cc.goal.Radius
		cc.DollyTo(prevRadius*scale, false)
		if cc.config.DollyToCursor {
			cc.anchorToCursor(prevRadius, ndc)
		}
	case ProjectionOrthographic:
		zoom := common.Clamp(cc.camera.Zoom()/scale, cc.config.MinZoom, cc.config.MaxZoom)
		cc.camera.SetZoom(zoom)
		cc.camera.UpdateProjectionMatrix()
		cc.needsUpdate = true
	}
}

// surfaceToNDC maps a surface pixel to normalized device coordinates using the drag rect.
func (cc *cameraControllerImpl) surfaceToNDC(x, y float64) mgl64.Vec2 {
	rect := cc.drag.rect
	if rect.Width <= 0 || rect.Height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		(x-rect.Left)/rect.Width*2 - 1,
		(y-rect.Top)/rect.Height*-2 + 1,
	}
}

// touchMode maps a contact count to a touch gesture mode; other counts keep the current mode.
func touchMode(contacts int, current GestureMode) GestureMode {
	switch contacts {
	case 1:
		return GestureTouchRotate
	case 2:
		return GestureTouchDollyTruck
	case 3:
		return GestureTouchTruck
	default:
		return current
	}
}

func pinchDistance(e input.TouchEvent) float64 {
	a, b := e.Touches[0], e.Touches[1]
	return math.Hypot(a.ClientX-b.ClientX, a.ClientY-b.ClientY)
}
