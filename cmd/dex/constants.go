package main

// Defaults for CLI commands.
const (
	DefaultPage         = 1
	DefaultExportFormat = "json"
)
