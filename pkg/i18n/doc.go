// Package i18n translates country labels.
//
// Messages is a small YAML-backed Translator keyed by the English catalog
// label (country codes are accepted as a second key). TranslateFunc and
// StrictTranslateFunc adapt any Translator to the callbacks expected by
// catalog.Build and catalog.BuildE.
package i18n
