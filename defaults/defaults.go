// Package defaults holds embedded defaults.
package defaults

import _ "embed"

var (
	// FormFile is the default form file for newly initialized projects.
	//
	//go:embed form.yaml
	FormFile []byte
)
