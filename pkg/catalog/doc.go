// Package catalog holds the static country and region table used by the
// country fields and builds label-sorted catalogs from it.
//
// The table carries ISO 3166-1 alpha-2 codes plus two legacy pseudo-codes,
// "AP" (Asia/Pacific Region) and "EU" (Europe). Labels are stored in English
// and double as translation keys; Build applies a translator and re-sorts on
// every call so each locale gets its own ordering.
package catalog
