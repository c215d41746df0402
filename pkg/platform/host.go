package platform

import "time"

// OverlayPermission reports whether the host environment allows drawing
// over other content. The engine checks it once before the first show;
// a denied permission fails Start instead of attempting attachment.
type OverlayPermission interface {
	Granted() bool
}

// GrantedPermission is an OverlayPermission that always allows.
type GrantedPermission struct{}

func (GrantedPermission) Granted() bool { return true }

// Haptics triggers vibration feedback on the host device.
type Haptics interface {
	Vibrate(d time.Duration)
}

// NopHaptics ignores vibration requests.
type NopHaptics struct{}

func (NopHaptics) Vibrate(time.Duration) {}

// AppActivator brings the host application to the foreground. It is the
// default click action when no click observer is registered.
type AppActivator interface {
	BringToForeground() error
}

// NopActivator ignores activation requests.
type NopActivator struct{}

func (NopActivator) BringToForeground() error { return nil }
