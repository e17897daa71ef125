package countries

import (
	"net/http"
	"path"
	"strings"
)

// Mux is anything the catalog endpoint can be mounted on; *http.ServeMux
// qualifies.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath is where the catalog endpoint lives under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return joinRoute(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes mounts a catalog handler built from fns and returns the
// pattern it used.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return New(fns...).RegisterRoutes(mux, basePath)
}

// RegisterRoutesWithOptions is RegisterRoutes for callers holding an Options
// value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	return New(func(o *Options) { *o = opts }).RegisterRoutes(mux, basePath)
}

// joinRoute returns the absolute, slash-normalized path of routePath under
// basePath. A trailing slash on routePath survives so subtree mounts work.
func joinRoute(basePath, routePath string) string {
	routePath = strings.TrimSpace(routePath)
	joined := path.Join("/", strings.TrimSpace(basePath), routePath)
	if strings.HasSuffix(routePath, "/") && joined != "/" {
		joined += "/"
	}
	return joined
}
