package main

import "embed"

// configFS carries the default configs so the binary runs from anywhere
//
//go:embed configs
var configFS embed.FS
