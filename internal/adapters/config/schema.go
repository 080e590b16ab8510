package config

// knownKeys are the top-level keys of project.yaml.
var knownKeys = map[string]bool{
	"name":          true,
	"version":       true,
	"description":   true,
	"webroot":       true,
	"dependencies":  true,
	"frameworks":    true,
	"scripts":       true,
	"bundleExclude": true,
}

// frameworkKeys are the keys allowed under each entry of "frameworks".
var frameworkKeys = map[string]bool{
	"dependencies": true,
}

// DefaultProjectVersion is used when a manifest declares no version.
const DefaultProjectVersion = "1.0.0"
