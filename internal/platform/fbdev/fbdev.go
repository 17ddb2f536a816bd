// Package fbdev presents frames on a Linux framebuffer device such as /dev/fb0.
package fbdev

// DefaultPath is the framebuffer device opened when no path is given.
const DefaultPath = "/dev/fb0"
