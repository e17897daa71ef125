// Package field describes the four country field kinds (dropdown,
// multi-select, checkboxes, radio buttons) and the registry hosts use to
// expose them.
//
// A Field ties a handle and a Kind to the catalog and normalizer: the kind
// decides whether values hold one or several codes, the renderer picks the
// template from it, and nothing else differs between kinds.
package field
