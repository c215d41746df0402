package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-hover/hover/pkg/errors"
	"github.com/go-hover/hover/pkg/graphics"
)

// Store persists a widget configuration across process restarts. The
// visibility coordinator consults the store on its boot path so an
// auto-restarted widget comes back with the configuration it had.
type Store interface {
	// Load returns the persisted snapshot. found is false when nothing
	// was saved.
	Load() (snap Snapshot, found bool, err error)
	// Save persists the snapshot, replacing any previous one.
	Save(snap Snapshot) error
	// Clear removes the persisted snapshot.
	Clear() error
}

// FileStore is a Store backed by a YAML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a file store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and rebuilds the persisted snapshot, running it back through
// the builder so a hand-edited file still gets validated.
func (s *FileStore) Load() (Snapshot, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, errors.E("config.FileStore.Load", errors.KindConfig, err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Snapshot{}, false, errors.E("config.FileStore.Load", errors.KindConfig, err)
	}

	snap, err := f.toSnapshot()
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

// Save writes the snapshot, creating parent directories as needed.
func (s *FileStore) Save(snap Snapshot) error {
	data, err := yaml.Marshal(fromSnapshot(snap))
	if err != nil {
		return errors.E("config.FileStore.Save", errors.KindConfig, err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.E("config.FileStore.Save", errors.KindConfig, err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return errors.E("config.FileStore.Save", errors.KindConfig, err)
	}
	return nil
}

// Clear removes the persisted snapshot. Missing files are not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return errors.E("config.FileStore.Clear", errors.KindConfig, err)
	}
	return nil
}

// fileSchema mirrors Snapshot for serialization so the snapshot type itself
// stays free of encoding concerns.
type fileSchema struct {
	Size      float64 `yaml:"size"`
	Shape     string  `yaml:"shape,omitempty"`
	Draggable bool    `yaml:"draggable"`

	Appearance struct {
		BackgroundColor string  `yaml:"background_color,omitempty"`
		BorderColor     string  `yaml:"border_color,omitempty"`
		BorderWidth     float64 `yaml:"border_width,omitempty"`
		Padding         float64 `yaml:"padding,omitempty"`
		Opacity         float64 `yaml:"opacity"`
		CornerRadius    float64 `yaml:"corner_radius,omitempty"`
	} `yaml:"appearance"`

	DismissZone struct {
		Enabled        bool     `yaml:"enabled"`
		Trigger        string   `yaml:"trigger,omitempty"`
		Height         float64  `yaml:"height,omitempty"`
		Position       string   `yaml:"position,omitempty"`
		Color          string   `yaml:"color,omitempty"`
		ActiveColor    string   `yaml:"active_color,omitempty"`
		Gradient       []string `yaml:"gradient,omitempty"`
		ActiveGradient []string `yaml:"active_gradient,omitempty"`
		Orientation    string   `yaml:"gradient_orientation,omitempty"`
		CornerRadius   float64  `yaml:"corner_radius,omitempty"`
		Behavior       string   `yaml:"behavior,omitempty"`
	} `yaml:"dismiss_zone,omitempty"`

	Animations struct {
		SnapToEdge     bool    `yaml:"snap_to_edge"`
		SnapDurationMs int     `yaml:"snap_duration_ms,omitempty"`
		Interpolator   string  `yaml:"interpolator,omitempty"`
		PressScale     float64 `yaml:"press_scale,omitempty"`
		HapticFeedback bool    `yaml:"haptic_feedback,omitempty"`
		LongPressMs    int     `yaml:"long_press_ms,omitempty"`
	} `yaml:"animations,omitempty"`

	Constraints struct {
		MinX         *float64 `yaml:"min_x,omitempty"`
		MaxX         *float64 `yaml:"max_x,omitempty"`
		MinY         *float64 `yaml:"min_y,omitempty"`
		MaxY         *float64 `yaml:"max_y,omitempty"`
		KeepOnScreen bool     `yaml:"keep_on_screen"`
		SnapToGrid   float64  `yaml:"snap_to_grid,omitempty"`
	} `yaml:"constraints,omitempty"`

	Badge *struct {
		Label           string  `yaml:"label"`
		Position        string  `yaml:"position,omitempty"`
		BackgroundColor string  `yaml:"background_color,omitempty"`
		TextColor       string  `yaml:"text_color,omitempty"`
		Size            float64 `yaml:"size"`
	} `yaml:"badge,omitempty"`

	Visibility struct {
		HideOnAppOpen   bool `yaml:"hide_on_app_open"`
		MonitorEnabled  bool `yaml:"monitor_enabled"`
		CheckIntervalMs int  `yaml:"check_interval_ms,omitempty"`
	} `yaml:"visibility,omitempty"`

	Callbacks struct {
		Click          bool `yaml:"click"`
		LongPress      bool `yaml:"long_press"`
		Drag           bool `yaml:"drag"`
		Show           bool `yaml:"show"`
		Hide           bool `yaml:"hide"`
		Dismiss        bool `yaml:"dismiss"`
		PositionChange bool `yaml:"position_change"`
		AppState       bool `yaml:"app_state"`
	} `yaml:"callbacks,omitempty"`

	Position struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"position,omitempty"`
}

func (f *fileSchema) toSnapshot() (Snapshot, error) {
	const op = "config.FileStore.Load"
	b := NewBuilder()

	b.Size(f.Size)
	switch f.Shape {
	case "", "circle":
		b.Shape(ShapeCircle)
	case "rounded":
		b.Shape(ShapeRounded)
	default:
		return Snapshot{}, errors.Config(op, "shape", fmt.Errorf("unknown shape %q", f.Shape))
	}
	b.Draggable(f.Draggable)

	appearance := Appearance{
		BorderWidth:  f.Appearance.BorderWidth,
		Padding:      f.Appearance.Padding,
		Opacity:      f.Appearance.Opacity,
		CornerRadius: f.Appearance.CornerRadius,
	}
	var err error
	if appearance.BackgroundColor, err = parseColorDefault(f.Appearance.BackgroundColor, graphics.RGB(0x21, 0x96, 0xF3)); err != nil {
		return Snapshot{}, errors.Config(op, "appearance.background_color", err)
	}
	if appearance.BorderColor, err = parseColorDefault(f.Appearance.BorderColor, graphics.ColorTransparent); err != nil {
		return Snapshot{}, errors.Config(op, "appearance.border_color", err)
	}
	b.Appearance(appearance)

	zone, err := f.zone()
	if err != nil {
		return Snapshot{}, err
	}
	b.DismissZone(zone)

	interp, err := ParseInterpolator(f.Animations.Interpolator)
	if err != nil {
		return Snapshot{}, errors.Config(op, "animations.interpolator", err)
	}
	b.Animations(Animations{
		SnapToEdge:        f.Animations.SnapToEdge,
		SnapDuration:      time.Duration(f.Animations.SnapDurationMs) * time.Millisecond,
		Interpolator:      interp,
		PressScale:        f.Animations.PressScale,
		HapticFeedback:    f.Animations.HapticFeedback,
		LongPressDuration: time.Duration(f.Animations.LongPressMs) * time.Millisecond,
	})

	b.Constraints(Constraints{
		MinX:         f.Constraints.MinX,
		MaxX:         f.Constraints.MaxX,
		MinY:         f.Constraints.MinY,
		MaxY:         f.Constraints.MaxY,
		KeepOnScreen: f.Constraints.KeepOnScreen,
		SnapToGrid:   f.Constraints.SnapToGrid,
	})

	if f.Badge != nil {
		badge := Badge{
			Label: f.Badge.Label,
			Size:  f.Badge.Size,
		}
		switch f.Badge.Position {
		case "", "top_right":
			badge.Position = BadgeTopRight
		case "top_left":
			badge.Position = BadgeTopLeft
		case "bottom_right":
			badge.Position = BadgeBottomRight
		case "bottom_left":
			badge.Position = BadgeBottomLeft
		default:
			return Snapshot{}, errors.Config(op, "badge.position", fmt.Errorf("unknown corner %q", f.Badge.Position))
		}
		if badge.BackgroundColor, err = parseColorDefault(f.Badge.BackgroundColor, graphics.ColorRed); err != nil {
			return Snapshot{}, errors.Config(op, "badge.background_color", err)
		}
		if badge.TextColor, err = parseColorDefault(f.Badge.TextColor, graphics.ColorWhite); err != nil {
			return Snapshot{}, errors.Config(op, "badge.text_color", err)
		}
		b.Badge(&badge)
	}

	b.Visibility(Visibility{
		HideOnAppOpen:  f.Visibility.HideOnAppOpen,
		MonitorEnabled: f.Visibility.MonitorEnabled,
		CheckInterval:  time.Duration(f.Visibility.CheckIntervalMs) * time.Millisecond,
	})

	b.Flags(CallbackFlags{
		Click:          f.Callbacks.Click,
		LongPress:      f.Callbacks.LongPress,
		Drag:           f.Callbacks.Drag,
		Show:           f.Callbacks.Show,
		Hide:           f.Callbacks.Hide,
		Dismiss:        f.Callbacks.Dismiss,
		PositionChange: f.Callbacks.PositionChange,
		AppState:       f.Callbacks.AppState,
	})

	b.InitialPosition(graphics.Offset{X: f.Position.X, Y: f.Position.Y})

	return b.Build()
}

func (f *fileSchema) zone() (DismissZone, error) {
	const op = "config.FileStore.Load"
	zone := DismissZone{
		Enabled: f.DismissZone.Enabled,
		Height:  f.DismissZone.Height,
		Style: ZoneStyle{
			CornerRadius: f.DismissZone.CornerRadius,
		},
	}

	switch f.DismissZone.Trigger {
	case "", "always":
		zone.Trigger = TriggerAlways
	case "on_long_press":
		zone.Trigger = TriggerOnLongPress
	default:
		return zone, errors.Config(op, "dismiss_zone.trigger", fmt.Errorf("unknown trigger %q", f.DismissZone.Trigger))
	}
	switch f.DismissZone.Position {
	case "", "bottom":
		zone.Position = ZoneBottom
	case "top":
		zone.Position = ZoneTop
	default:
		return zone, errors.Config(op, "dismiss_zone.position", fmt.Errorf("unknown position %q", f.DismissZone.Position))
	}
	switch f.DismissZone.Behavior {
	case "", "hide":
		zone.Behavior = BehaviorHide
	case "destroy":
		zone.Behavior = BehaviorDestroy
	default:
		return zone, errors.Config(op, "dismiss_zone.behavior", fmt.Errorf("unknown behavior %q", f.DismissZone.Behavior))
	}

	var err error
	if zone.Style.NormalColor, err = parseColorDefault(f.DismissZone.Color, graphics.RGBA8(0xFF, 0x17, 0x44, 0x80)); err != nil {
		return zone, errors.Config(op, "dismiss_zone.color", err)
	}
	if zone.Style.ActiveColor, err = parseColorDefault(f.DismissZone.ActiveColor, graphics.RGBA8(0xFF, 0x17, 0x44, 0xFF)); err != nil {
		return zone, errors.Config(op, "dismiss_zone.active_color", err)
	}

	orientation, err := parseOrientation(f.DismissZone.Orientation)
	if err != nil {
		return zone, errors.Config(op, "dismiss_zone.gradient_orientation", err)
	}
	if zone.Style.NormalGradient, err = parseGradient(f.DismissZone.Gradient, orientation); err != nil {
		return zone, errors.Config(op, "dismiss_zone.gradient", err)
	}
	if zone.Style.ActiveGradient, err = parseGradient(f.DismissZone.ActiveGradient, orientation); err != nil {
		return zone, errors.Config(op, "dismiss_zone.active_gradient", err)
	}

	return zone, nil
}

func fromSnapshot(snap Snapshot) fileSchema {
	var f fileSchema
	f.Size = snap.Size
	f.Shape = snap.Shape.String()
	f.Draggable = snap.Draggable

	f.Appearance.BackgroundColor = formatColor(snap.Appearance.BackgroundColor)
	f.Appearance.BorderColor = formatColor(snap.Appearance.BorderColor)
	f.Appearance.BorderWidth = snap.Appearance.BorderWidth
	f.Appearance.Padding = snap.Appearance.Padding
	f.Appearance.Opacity = snap.Appearance.Opacity
	f.Appearance.CornerRadius = snap.Appearance.CornerRadius

	f.DismissZone.Enabled = snap.Zone.Enabled
	f.DismissZone.Trigger = snap.Zone.Trigger.String()
	f.DismissZone.Height = snap.Zone.Height
	f.DismissZone.Position = snap.Zone.Position.String()
	f.DismissZone.Color = formatColor(snap.Zone.Style.NormalColor)
	f.DismissZone.ActiveColor = formatColor(snap.Zone.Style.ActiveColor)
	f.DismissZone.CornerRadius = snap.Zone.Style.CornerRadius
	f.DismissZone.Behavior = snap.Zone.Behavior.String()
	if g := snap.Zone.Style.NormalGradient; g != nil {
		f.DismissZone.Gradient = formatColors(g.Colors)
		f.DismissZone.Orientation = g.Orientation.String()
	}
	if g := snap.Zone.Style.ActiveGradient; g != nil {
		f.DismissZone.ActiveGradient = formatColors(g.Colors)
		f.DismissZone.Orientation = g.Orientation.String()
	}

	f.Animations.SnapToEdge = snap.Animations.SnapToEdge
	f.Animations.SnapDurationMs = int(snap.Animations.SnapDuration / time.Millisecond)
	f.Animations.Interpolator = snap.Animations.Interpolator.String()
	f.Animations.PressScale = snap.Animations.PressScale
	f.Animations.HapticFeedback = snap.Animations.HapticFeedback
	f.Animations.LongPressMs = int(snap.Animations.LongPressDuration / time.Millisecond)

	f.Constraints.MinX = snap.Constraint.MinX
	f.Constraints.MaxX = snap.Constraint.MaxX
	f.Constraints.MinY = snap.Constraint.MinY
	f.Constraints.MaxY = snap.Constraint.MaxY
	f.Constraints.KeepOnScreen = snap.Constraint.KeepOnScreen
	f.Constraints.SnapToGrid = snap.Constraint.SnapToGrid

	if snap.Badge != nil {
		f.Badge = &struct {
			Label           string  `yaml:"label"`
			Position        string  `yaml:"position,omitempty"`
			BackgroundColor string  `yaml:"background_color,omitempty"`
			TextColor       string  `yaml:"text_color,omitempty"`
			Size            float64 `yaml:"size"`
		}{
			Label:           snap.Badge.Label,
			Position:        snap.Badge.Position.String(),
			BackgroundColor: formatColor(snap.Badge.BackgroundColor),
			TextColor:       formatColor(snap.Badge.TextColor),
			Size:            snap.Badge.Size,
		}
	}

	f.Visibility.HideOnAppOpen = snap.Visibility.HideOnAppOpen
	f.Visibility.MonitorEnabled = snap.Visibility.MonitorEnabled
	f.Visibility.CheckIntervalMs = int(snap.Visibility.CheckInterval / time.Millisecond)

	f.Callbacks.Click = snap.Flags.Click
	f.Callbacks.LongPress = snap.Flags.LongPress
	f.Callbacks.Drag = snap.Flags.Drag
	f.Callbacks.Show = snap.Flags.Show
	f.Callbacks.Hide = snap.Flags.Hide
	f.Callbacks.Dismiss = snap.Flags.Dismiss
	f.Callbacks.PositionChange = snap.Flags.PositionChange
	f.Callbacks.AppState = snap.Flags.AppState

	f.Position.X = snap.InitialPosition.X
	f.Position.Y = snap.InitialPosition.Y

	return f
}

// parseColor reads "#RRGGBB" or "#AARRGGBB".
func parseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}

func parseColorDefault(s string, def graphics.Color) (graphics.Color, error) {
	if s == "" {
		return def, nil
	}
	return parseColor(s)
}

func formatColor(c graphics.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func formatColors(colors []graphics.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = formatColor(c)
	}
	return out
}

func parseOrientation(s string) (graphics.GradientOrientation, error) {
	switch s {
	case "", "top_bottom":
		return graphics.GradientTopBottom, nil
	case "bottom_top":
		return graphics.GradientBottomTop, nil
	case "left_right":
		return graphics.GradientLeftRight, nil
	case "right_left":
		return graphics.GradientRightLeft, nil
	case "tl_br":
		return graphics.GradientTLBR, nil
	case "bl_tr":
		return graphics.GradientBLTR, nil
	default:
		return graphics.GradientTopBottom, fmt.Errorf("unknown orientation %q", s)
	}
}

func parseGradient(colors []string, orientation graphics.GradientOrientation) (*graphics.Gradient, error) {
	if len(colors) == 0 {
		return nil, nil
	}
	parsed := make([]graphics.Color, len(colors))
	for i, s := range colors {
		c, err := parseColor(s)
		if err != nil {
			return nil, err
		}
		parsed[i] = c
	}
	g := graphics.NewGradient(parsed, orientation)
	return &g, nil
}
