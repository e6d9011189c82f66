// Package browser opens pages in the user's default browser.
package browser

import (
	"io"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens url in a browser.
type Opener func(url string) error

// Open launches the system default browser at url.
// The launcher's own console output is discarded so it does not interleave
// with the request log.
func Open(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

// Launch opens url with open and reports whether it succeeded.
// Failure is only logged as a warning; the server keeps running.
func Launch(l *zap.Logger, open Opener, url string) bool {
	if open == nil {
		open = Open
	}
	if err := open(url); err != nil {
		l.Warn("Could not open browser automatically", zap.String("url", url), zap.Error(err))
		return false
	}
	l.Info("Browser opened", zap.String("url", url))
	return true
}
