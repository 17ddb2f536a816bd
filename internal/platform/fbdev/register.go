package fbdev

import (
	"github.com/vovakirdan/fb-breakout/internal/platform"
	"github.com/vovakirdan/fb-breakout/internal/registry"
)

func init() {
	registry.Register("fbdev", "Linux framebuffer (/dev/fb0)", func(opts registry.Options) (platform.Display, error) {
		d, err := Open(opts.Path)
		if err != nil {
			return nil, err
		}
		if opts.Logger != nil {
			w, h := d.Size()
			opts.Logger.Debug("framebuffer opened", "width", w, "height", h)
		}
		return d, nil
	})
}
