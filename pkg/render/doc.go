// Package render turns country fields into HTML controls using pongo2
// templates. Labels are sanitized with bluemonday before they reach the
// template and CSS classes can be supplied by a go-theme manifest.
package render
