// Package config assembles the garden server and dashboard settings.
//
// Each source fills a fresh [StructuredConfig]; the builder then merges them
// with mergo so that a non-zero field from a later source wins:
//
//	env  <  flags  <  JSON file (-c / CONFIG)
//
// Defaults only fill fields that are still zero after the merge, and each
// view ([ServerConfig], [ClientConfig]) validates what it needs.
package config
