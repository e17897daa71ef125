package countries

import "strconv"

// EndpointMapping names the response fields holding option values and labels.
type EndpointMapping struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EndpointConfig tells a client-side widget how to load options from the
// handler: where to send the request, which static and dynamic parameters to
// pass and where the results live in the response.
type EndpointConfig struct {
	URL           string            `json:"url"`
	Method        string            `json:"method"`
	ResultsPath   string            `json:"resultsPath"`
	Params        map[string]string `json:"params,omitempty"`
	DynamicParams map[string]string `json:"dynamicParams,omitempty"`
	Mapping       EndpointMapping   `json:"mapping"`
}

// EndpointFor builds the EndpointConfig for a handler mounted under basePath.
// The search parameter is bound to "{{self}}", the widget's typed text.
func EndpointFor(basePath string, opts Options) EndpointConfig {
	opts = NewOptions(func(o *Options) { *o = opts })
	return EndpointConfig{
		URL:         joinRoute(basePath, opts.RoutePath),
		Method:      "GET",
		ResultsPath: "data",
		Params: map[string]string{
			opts.LimitParam: strconv.Itoa(opts.DefaultLimit),
		},
		DynamicParams: map[string]string{
			opts.SearchParam: "{{self}}",
		},
		Mapping: EndpointMapping{
			Value: "value",
			Label: "label",
		},
	}
}
