package domain

import (
	"bytes"
	"encoding/json"
)

// LockFileVersion is the schema version written to every lock file.
const LockFileVersion = 1

// LockFile records the exact library set a bundle was built from.
type LockFile struct {
	Locked    bool              `json:"locked"`
	Version   int               `json:"version"`
	Libraries []LockFileLibrary `json:"libraries"`
}

// LockFileLibrary is one package entry of the lock file.
type LockFileLibrary struct {
	Name            string                   `json:"name"`
	Version         string                   `json:"version"`
	Sha             string                   `json:"sha"`
	Files           []string                 `json:"files"`
	FrameworkGroups []LockFileFrameworkGroup `json:"frameworkGroups"`
}

// LockFileFrameworkGroup holds a library's assets for one target platform.
type LockFileFrameworkGroup struct {
	TargetPlatform        TargetPlatform `json:"targetPlatform"`
	Dependencies          []Dependency   `json:"dependencies"`
	FrameworkAssemblies   []string       `json:"frameworkAssemblies"`
	RuntimeAssemblies     []string       `json:"runtimeAssemblies"`
	CompileTimeAssemblies []string       `json:"compileTimeAssemblies"`
}

// Marshal renders the lock file as indented JSON terminated by a newline.
func (l *LockFile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
