package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
)

var _ ports.RuntimeLocator = (*RuntimeLocator)(nil)

// windowsVar matches %NAME% references in runtime search paths.
var windowsVar = regexp.MustCompile(`%([^%]+)%`)

// RuntimeLocator finds runtimes below the runtime homes named by the environment.
type RuntimeLocator struct {
	getenv func(string) string
}

// NewRuntimeLocator creates a RuntimeLocator reading the process environment.
func NewRuntimeLocator() *RuntimeLocator {
	return &RuntimeLocator{getenv: os.Getenv}
}

// Locate probes name as a literal directory, then <home>/runtimes/<name> for each runtime home.
func (l *RuntimeLocator) Locate(name string) (string, error) {
	probed := []string{name}
	if isDir(name) {
		return filepath.Clean(name), nil
	}

	for _, home := range l.searchPath() {
		candidate := filepath.Join(l.expand(home), domain.RuntimesDirName, name)
		if isDir(candidate) {
			return candidate, nil
		}
		probed = append(probed, candidate)
	}
	return "", &domain.RuntimeNotFoundError{Name: name, Probed: probed}
}

// ActiveRuntime returns the runtime named by DNX_ACTIVE_RUNTIME.
func (l *RuntimeLocator) ActiveRuntime() (string, bool) {
	name := strings.TrimSpace(l.getenv(domain.EnvActiveRuntime))
	return name, name != ""
}

// searchPath returns the runtime homes in probe order.
// DNX_HOME replaces the default of ~/.dnx followed by DNX_GLOBAL_PATH.
func (l *RuntimeLocator) searchPath() []string {
	value := l.getenv(domain.EnvHome)
	if value == "" {
		userHome, err := os.UserHomeDir()
		if err == nil {
			value = filepath.Join(userHome, domain.DefaultHomeDirName)
		}
		value += ";" + l.getenv(domain.EnvGlobalPath)
	}

	var homes []string
	for segment := range strings.SplitSeq(value, ";") {
		if segment = strings.TrimSpace(segment); segment != "" {
			homes = append(homes, segment)
		}
	}
	return homes
}

// expand substitutes both $VAR and %VAR% references.
func (l *RuntimeLocator) expand(s string) string {
	s = windowsVar.ReplaceAllStringFunc(s, func(m string) string {
		if v := l.getenv(m[1 : len(m)-1]); v != "" {
			return v
		}
		return m
	})
	return os.Expand(s, l.getenv)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
