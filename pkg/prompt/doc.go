// Package prompt lets a terminal user pick countries for a field. Prompts are
// rendered with survey; tests and hosts can plug in their own Driver.
package prompt
