// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the stored appearance preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Next returns the theme that follows t in the toggle cycle
// system -> dark -> light -> system.
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeSystem
	}
}

// ThemeInfo is the transport view of the theme preference.
type ThemeInfo struct {
	Theme Theme `json:"theme"`
	Dark  bool  `json:"dark"`
}
