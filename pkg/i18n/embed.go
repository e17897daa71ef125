package i18n

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed locales/*.yaml
var localesFS embed.FS

var (
	defaultOnce     sync.Once
	defaultMessages *Messages
	defaultErr      error
)

// LocalesFS exposes the bundled locale files (de, fr) so hosts can layer their
// own files on top.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return localesFS
	}
	return sub
}

// DefaultMessages returns the translator for the bundled locales. It is
// loaded once; the returned translator is shared, so callers that need to
// add messages should use LoadFS(LocalesFS(), ".") instead.
func DefaultMessages() (*Messages, error) {
	defaultOnce.Do(func() {
		defaultMessages, defaultErr = LoadFS(LocalesFS(), ".")
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultMessages, nil
}
