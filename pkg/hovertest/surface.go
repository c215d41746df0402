package hovertest

import (
	"sync"

	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/engine"
	"github.com/go-hover/hover/pkg/graphics"
)

// FakeSurface is a recording engine.Surface. It never renders anything;
// it remembers every call so tests can assert what the engine asked the
// platform to do. Safe for concurrent use.
type FakeSurface struct {
	mu sync.Mutex

	attachErr error
	alive     bool
	attached  bool

	Attaches    int
	Detaches    int
	LastSpec    engine.WidgetSpec
	Positions   []graphics.Offset
	Scales      []float64
	Appearances []config.Appearance
	Badges      []*config.Badge
	ZoneShows   []engine.ZoneAppearance
	ZoneUpdates []engine.ZoneAppearance
	ZoneHides   int
}

// NewFakeSurface returns a surface that accepts attachment.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{}
}

// FailAttach makes every subsequent Attach return err.
func (s *FakeSurface) FailAttach(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachErr = err
}

// Kill simulates the platform destroying the view out from under the
// engine: Alive reports false while the engine still believes it is
// attached.
func (s *FakeSurface) Kill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = false
}

func (s *FakeSurface) Attach(spec engine.WidgetSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attachErr != nil {
		return s.attachErr
	}
	s.Attaches++
	s.LastSpec = spec
	s.attached = true
	s.alive = true
	return nil
}

func (s *FakeSurface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Detaches++
	s.attached = false
	s.alive = false
}

func (s *FakeSurface) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

func (s *FakeSurface) SetPosition(pos graphics.Offset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Positions = append(s.Positions, pos)
}

func (s *FakeSurface) SetScale(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Scales = append(s.Scales, scale)
}

func (s *FakeSurface) ApplyAppearance(a config.Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Appearances = append(s.Appearances, a)
}

func (s *FakeSurface) SetBadge(b *config.Badge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Badges = append(s.Badges, b)
}

func (s *FakeSurface) ShowDismissZone(z engine.ZoneAppearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ZoneShows = append(s.ZoneShows, z)
}

func (s *FakeSurface) UpdateDismissZone(z engine.ZoneAppearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ZoneUpdates = append(s.ZoneUpdates, z)
}

func (s *FakeSurface) HideDismissZone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ZoneHides++
}

// LastPosition returns the most recent SetPosition argument and whether
// any position was ever set.
func (s *FakeSurface) LastPosition() (graphics.Offset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Positions) == 0 {
		return graphics.Offset{}, false
	}
	return s.Positions[len(s.Positions)-1], true
}

// Attached reports whether the view is currently attached.
func (s *FakeSurface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}
