// Package schema describes country field values as OpenAPI schemas and
// validates submitted values against them with kin-openapi.
package schema
