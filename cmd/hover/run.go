package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/engine"
	"github.com/go-hover/hover/pkg/graphics"
	"github.com/go-hover/hover/pkg/icon"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engine headlessly against a console surface",
	Long: `Run loads a configuration file, starts the overlay engine with a
surface that logs every platform call, and replays a demonstration
pointer session: press, drag across the screen, release (with edge snap
when configured), then a long press. Useful for inspecting what a host
bridge would be asked to do for a given configuration.`,
	RunE: runRun,
}

var (
	runPath     string
	runIconPath string
	runWidth    float64
	runHeight   float64
)

func init() {
	runCmd.Flags().StringVarP(&runPath, "config", "c", "hover.yaml", "configuration file")
	runCmd.Flags().StringVar(&runIconPath, "icon", "", "icon file (PNG, JPEG, GIF or SVG)")
	runCmd.Flags().Float64Var(&runWidth, "width", 1080, "simulated screen width")
	runCmd.Flags().Float64Var(&runHeight, "height", 1920, "simulated screen height")
}

func runRun(cmd *cobra.Command, args []string) error {
	store := config.NewFileStore(runPath)
	snap, found, err := store.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", runPath, err)
	}
	if !found {
		return fmt.Errorf("%s: no such file", runPath)
	}

	var face *icon.Resource
	if runIconPath != "" {
		f, err := os.Open(runIconPath)
		if err != nil {
			return err
		}
		face, err = icon.Decode(f, icon.Options{TargetSize: snap.Size})
		f.Close()
		if err != nil {
			return err
		}
	}

	e, err := engine.New(engine.Deps{
		Surface: &consoleSurface{},
		Screen:  engine.FixedScreen{Width: runWidth, Height: runHeight},
		Sink:    consoleSink{},
		Store:   store,
	})
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.Init(snap, face); err != nil {
		return err
	}
	if err := e.Start(); err != nil {
		return err
	}

	log.Println("=== Hover Console ===")
	log.Printf("screen %.0fx%.0f, widget at %v", runWidth, runHeight, e.Position())
	log.Println("Press Ctrl+C to exit")

	replaySession(e)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("shutting down")
	return nil
}

// replaySession feeds a scripted pointer trace through the engine.
func replaySession(e *engine.Engine) {
	start := e.Position()

	// Drag toward screen center.
	e.PointerDown(start.X+10, start.Y+10)
	for i := 1; i <= 10; i++ {
		e.PointerMove(start.X+10+float64(i)*25, start.Y+10+float64(i)*12)
		time.Sleep(16 * time.Millisecond)
	}
	e.PointerUp(start.X+260, start.Y+130)

	// Let an edge snap play out.
	time.Sleep(500 * time.Millisecond)

	// Long press in place.
	pos := e.Position()
	e.PointerDown(pos.X+5, pos.Y+5)
	time.Sleep(700 * time.Millisecond)
	e.PointerUp(pos.X+5, pos.Y+5)
	time.Sleep(100 * time.Millisecond)
}

// consoleSurface logs every platform call instead of rendering.
type consoleSurface struct {
	alive bool
}

var _ engine.Surface = (*consoleSurface)(nil)

func (s *consoleSurface) Attach(spec engine.WidgetSpec) error {
	log.Printf("surface: attach %.0fpx %s widget at %v", spec.Config.Size, spec.Config.Shape, spec.Position)
	s.alive = true
	return nil
}

func (s *consoleSurface) Detach() {
	log.Println("surface: detach")
	s.alive = false
}

func (s *consoleSurface) Alive() bool { return s.alive }

func (s *consoleSurface) SetPosition(pos graphics.Offset) {
	log.Printf("surface: position (%.1f, %.1f)", pos.X, pos.Y)
}

func (s *consoleSurface) SetScale(scale float64) {
	log.Printf("surface: scale %.2f", scale)
}

func (s *consoleSurface) ApplyAppearance(a config.Appearance) {
	log.Printf("surface: appearance opacity=%.2f border=%.1f", a.Opacity, a.BorderWidth)
}

func (s *consoleSurface) SetBadge(b *config.Badge) {
	if b == nil {
		log.Println("surface: badge removed")
		return
	}
	log.Printf("surface: badge %q at %s", b.Label, b.Position)
}

func (s *consoleSurface) ShowDismissZone(z engine.ZoneAppearance) {
	log.Printf("surface: dismiss zone shown %v", z.Rect)
}

func (s *consoleSurface) UpdateDismissZone(z engine.ZoneAppearance) {
	log.Printf("surface: dismiss zone active=%v", z.Active)
}

func (s *consoleSurface) HideDismissZone() {
	log.Println("surface: dismiss zone hidden")
}

// consoleSink prints delivered events.
type consoleSink struct{}

func (consoleSink) Emit(ev engine.Event) error {
	switch ev.Kind {
	case engine.EventDrag, engine.EventPositionChange:
		log.Printf("event: %s (%.1f, %.1f)", ev.Kind, ev.X, ev.Y)
	default:
		log.Printf("event: %s", ev.Kind)
	}
	return nil
}
