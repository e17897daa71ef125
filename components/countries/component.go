package countries

import (
	"errors"
	"net/http"
)

// Component owns one catalog handler. Every route it mounts shares that
// handler, so the per-locale catalog cache and the metrics are shared too.
type Component struct {
	opts    Options
	handler http.Handler
}

// New builds a component from the default options plus fns.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, handler: HandlerWithOptions(opts)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the component's catalog handler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return c.handler
}

// RegisterRoutes mounts the handler at RoutePath under basePath and returns
// the pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", errors.New("countries: missing mux")
	}
	if c == nil {
		c = New()
	}
	pattern := joinRoute(basePath, c.opts.RoutePath)
	mux.Handle(pattern, c.handler)
	return pattern, nil
}

// Mount registers the handler and returns the widget endpoint that points at
// it.
func (c *Component) Mount(mux Mux, basePath string) (EndpointConfig, error) {
	if _, err := c.RegisterRoutes(mux, basePath); err != nil {
		return EndpointConfig{}, err
	}
	return c.Endpoint(basePath), nil
}

// Endpoint describes how a remote-options widget queries the handler mounted
// under basePath.
func (c *Component) Endpoint(basePath string) EndpointConfig {
	return EndpointFor(basePath, c.Options())
}
