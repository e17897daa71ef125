// Package countries exposes the country catalog over HTTP as JSON options for
// form inputs that load their choices remotely.
//
// The handler responds to GET and HEAD requests. It supports a search query, a
// result limit, a locale (or Accept-Language negotiation when a translator is
// configured) and the currently stored value, which marks matching options as
// selected.
package countries
