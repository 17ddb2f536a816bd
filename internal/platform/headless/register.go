package headless

import (
	"github.com/vovakirdan/fb-breakout/internal/platform"
	"github.com/vovakirdan/fb-breakout/internal/registry"
)

func init() {
	registry.Register("headless", "In-memory, final frame written to PNG", func(opts registry.Options) (platform.Display, error) {
		return New(opts.Path), nil
	})
}
