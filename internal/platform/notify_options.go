package platform

import "time"

// AppName is reported to notification centres that group by application.
const AppName = "UltraPaint"

// DefaultTimeout is how long a notification stays up when Options leaves
// Timeout unset.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown with the
	// notification where supported.
	IconPath string
	// Timeout is a hint; not every platform honours it.
	Timeout time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
