// Package web holds the embedded storefront script and admin page templates.
package web

import "embed"

//go:embed static templates
var Assets embed.FS
