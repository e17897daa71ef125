// Package countryselect provides country picker fields for forms: a fixed
// catalog of ISO 3166-1 alpha-2 codes with localizable labels, and a
// normalizer that turns a stored value into the option list a control needs.
//
// Four field kinds share the same behaviour and differ only in the control
// they render: dropdown and radio store one code, multi-select and checkboxes
// store a list. Subpackages expose each piece:
//
//   - pkg/catalog: the country table and sorted catalogs
//   - pkg/selection: raw value decoding, normalization and serialization
//   - pkg/field: field kinds, configuration and the kind registry
//   - pkg/i18n: translators and the bundled German and French labels
//   - pkg/render: HTML rendering through pongo2 templates
//   - pkg/schema: OpenAPI schemas and value validation
//   - pkg/prompt: terminal pickers
//   - components/countries: a JSON options endpoint
package countryselect
