package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SquashStretchData scales the player sprite on landing. The physics box
// never changes; only the drawn rectangle does.
type SquashStretchData struct {
	ScaleX, ScaleY float32
	WasGrounded    bool

	tweenX, tweenY *gween.Tween
}

// NewSquashStretch returns an idle (unscaled) squash state.
func NewSquashStretch() SquashStretchData {
	return SquashStretchData{ScaleX: 1, ScaleY: 1}
}

// Land starts a squash that eases back to 1 over duration seconds.
func (s *SquashStretchData) Land(scaleX, scaleY, duration float32) {
	s.tweenX = gween.New(scaleX, 1, duration, ease.OutQuad)
	s.tweenY = gween.New(scaleY, 1, duration, ease.OutQuad)
	s.ScaleX, s.ScaleY = scaleX, scaleY
}

// Update advances the tweens by dt seconds.
func (s *SquashStretchData) Update(dt float32) {
	if s.tweenX == nil {
		return
	}
	x, doneX := s.tweenX.Update(dt)
	y, doneY := s.tweenY.Update(dt)
	s.ScaleX, s.ScaleY = x, y
	if doneX && doneY {
		s.tweenX, s.tweenY = nil, nil
		s.ScaleX, s.ScaleY = 1, 1
	}
}

// Active reports whether a squash is playing.
func (s *SquashStretchData) Active() bool {
	return s.tweenX != nil
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
