// Package views embeds the HTML templates for the chat window.
package views

import "embed"

//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
