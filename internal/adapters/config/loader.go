// Package config loads project manifests.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectLoader for project.yaml manifests.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ProjectLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the manifest in dir.
func (l *Loader) Load(dir string) (*domain.Project, []domain.FileFormatWarning, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
	}
	path := filepath.Join(absDir, domain.ProjectFileName)

	root, err := readYAMLNode(path)
	if err != nil {
		return nil, nil, err
	}

	p := &parser{path: path}
	project := p.project(root, absDir)
	if p.err != nil {
		return nil, nil, p.err
	}
	return project, p.warnings, nil
}

// Resolver returns a resolver for sibling projects below searchRoot.
func (l *Loader) Resolver(searchRoot string) ports.ProjectResolver {
	return newResolver(l, searchRoot)
}

// readYAMLNode reads a YAML file into its document node.
func readYAMLNode(path string) (*yaml.Node, error) {
	// #nosec G304 -- path is built from the project directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "no "+domain.ProjectFileName+" found"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectParseFailed, err.Error()), "path", path)
	}
	if len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	}
	return doc.Content[0], nil
}

// parser converts a manifest node into a project, collecting warnings.
type parser struct {
	path     string
	warnings []domain.FileFormatWarning
	err      error
}

func (p *parser) warn(n *yaml.Node, format string, args ...any) {
	p.warnings = append(p.warnings, domain.FileFormatWarning{
		Message: fmt.Sprintf(format, args...),
		Path:    p.path,
		Line:    n.Line,
		Column:  n.Column,
	})
}

func (p *parser) fail(n *yaml.Node, msg string) {
	if p.err != nil {
		return
	}
	p.err = zerr.With(zerr.With(zerr.Wrap(domain.ErrProjectParseFailed, msg), "path", p.path), "line", n.Line)
}

func (p *parser) project(root *yaml.Node, dir string) *domain.Project {
	project := &domain.Project{
		Name:      filepath.Base(dir),
		Version:   DefaultProjectVersion,
		Directory: dir,
	}

	if root.Kind != yaml.MappingNode {
		p.fail(root, "manifest must be a mapping")
		return nil
	}

	for key, value := range pairs(root) {
		switch key.Value {
		case "name":
			project.Name = value.Value
		case "version":
			if !domain.ValidVersion(value.Value) {
				p.fail(value, "invalid project version "+value.Value)
				continue
			}
			project.Version = value.Value
		case "webroot":
			project.WebRoot = value.Value
		case "dependencies":
			project.Dependencies = p.dependencies(value)
		case "frameworks":
			project.Platforms = p.frameworks(value)
		case "scripts":
			project.Scripts = p.scripts(value)
		case "bundleExclude":
			project.BundleExclude = p.strings(value)
		default:
			if !knownKeys[key.Value] {
				p.warn(key, "unknown property %q", key.Value)
			}
		}
	}
	return project
}

func (p *parser) dependencies(n *yaml.Node) []domain.Dependency {
	if n.Kind != yaml.MappingNode {
		p.fail(n, "dependencies must be a mapping of name to version range")
		return nil
	}
	var deps []domain.Dependency
	for key, value := range pairs(n) {
		versions := value.Value
		if value.Kind == yaml.MappingNode {
			versions = ""
			for k, v := range pairs(value) {
				if k.Value == "version" {
					versions = v.Value
				} else {
					p.warn(k, "unknown dependency property %q", k.Value)
				}
			}
		}
		r, err := domain.ParseVersionRange(versions)
		if err != nil {
			p.fail(value, "invalid version range for "+key.Value)
			continue
		}
		deps = append(deps, domain.Dependency{Name: key.Value, Range: r})
	}
	return deps
}

func (p *parser) frameworks(n *yaml.Node) []domain.ProjectPlatform {
	if n.Kind != yaml.MappingNode {
		p.fail(n, "frameworks must be a mapping")
		return nil
	}
	var out []domain.ProjectPlatform
	for key, value := range pairs(n) {
		platform, err := domain.ParsePlatform(key.Value)
		if err != nil || platform.IsAny() {
			p.fail(key, "invalid framework "+key.Value)
			continue
		}
		pp := domain.ProjectPlatform{Platform: platform}
		if value.Kind == yaml.MappingNode {
			for k, v := range pairs(value) {
				if !frameworkKeys[k.Value] {
					p.warn(k, "unknown framework property %q", k.Value)
					continue
				}
				pp.Dependencies = p.dependencies(v)
			}
		}
		out = append(out, pp)
	}
	return out
}

func (p *parser) scripts(n *yaml.Node) map[domain.HookStage][]string {
	if n.Kind != yaml.MappingNode {
		p.fail(n, "scripts must be a mapping")
		return nil
	}
	out := make(map[domain.HookStage][]string)
	for key, value := range pairs(n) {
		stage := domain.HookStage(key.Value)
		switch stage {
		case domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle:
			out[stage] = p.strings(value)
		default:
			p.warn(key, "unknown script %q", key.Value)
		}
	}
	return out
}

// strings accepts a scalar or a sequence of scalars.
func (p *parser) strings(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil
		}
		return []string{n.Value}
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				p.fail(item, "expected a string")
				continue
			}
			out = append(out, item.Value)
		}
		return out
	default:
		p.fail(n, "expected a string or a list of strings")
		return nil
	}
}

// pairs yields the key and value nodes of a mapping in document order.
func pairs(n *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i], n.Content[i+1]) {
				return
			}
		}
	}
}
