package packages

import (
	"path"
	"slices"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// metadata mirrors package.yaml. Every group is keyed by platform short name,
// "" or "any" meaning the group applies to every platform. Keys keep declaration order.
type metadata struct {
	Dependencies        groups[dependencyMap]       `yaml:"dependencies"`
	FrameworkAssemblies groups[[]frameworkAssembly] `yaml:"frameworkAssemblies"`
	References          groups[[]string]            `yaml:"references"`
}

// frameworkAssembly accepts either a bare name or {name, frameworks}.
type frameworkAssembly struct {
	Name       string   `yaml:"name"`
	Frameworks []string `yaml:"frameworks"`
}

func (f *frameworkAssembly) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		f.Name = n.Value
		return nil
	}
	type plain frameworkAssembly
	return n.Decode((*plain)(f))
}

// groups decodes a platform-keyed mapping into variants in declaration order.
type groups[T any] []domain.Variant[T]

func (g *groups[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("expected a mapping of platform to items"), "line", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		platform, err := domain.ParsePlatform(key.Value)
		if err != nil {
			return zerr.With(err, "line", key.Line)
		}
		var items T
		if err := value.Decode(&items); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid group"), "platform", key.Value)
		}
		*g = append(*g, domain.Variant[T]{Platform: platform, Items: items})
	}
	return nil
}

// dependencyMap decodes "name: range" pairs in declaration order.
type dependencyMap []domain.Dependency

func (d *dependencyMap) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("expected a mapping of name to version range"), "line", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		r, err := domain.ParseVersionRange(n.Content[i+1].Value)
		if err != nil {
			return zerr.With(err, "dependency", n.Content[i].Value)
		}
		*d = append(*d, domain.Dependency{Name: n.Content[i].Value, Range: r})
	}
	return nil
}

// parseMetadata decodes package.yaml into an asset set, deriving assembly
// references from the package files.
func parseMetadata(data []byte, files []string) (*domain.PackageAssetSet, error) {
	var raw metadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(domain.ErrPackageMetadataInvalid, err.Error())
	}

	assets := &domain.PackageAssetSet{
		ReferenceSets:      raw.References,
		AssemblyReferences: assemblyReferences(files),
	}
	for _, v := range raw.Dependencies {
		assets.DependencySets = append(assets.DependencySets, domain.Variant[[]domain.Dependency]{
			Platform: v.Platform,
			Items:    []domain.Dependency(v.Items),
		})
	}
	for _, v := range raw.FrameworkAssemblies {
		refs := make([]domain.FrameworkAssemblyReference, 0, len(v.Items))
		for _, fa := range v.Items {
			ref := domain.FrameworkAssemblyReference{Name: fa.Name}
			for _, s := range fa.Frameworks {
				platform, err := domain.ParsePlatform(s)
				if err != nil {
					return nil, zerr.Wrap(domain.ErrPackageMetadataInvalid, err.Error())
				}
				ref.SupportedPlatforms = append(ref.SupportedPlatforms, platform)
			}
			refs = append(refs, ref)
		}
		assets.FrameworkAssemblies = append(assets.FrameworkAssemblies, domain.Variant[[]domain.FrameworkAssemblyReference]{
			Platform: v.Platform,
			Items:    refs,
		})
	}
	return assets, nil
}

const (
	libDir      = "lib/"
	contractDir = "contract"
)

// assemblyReferences groups lib/<platform>/* files by platform and lib/* files under
// the any platform. Contract assemblies are never runtime candidates.
func assemblyReferences(files []string) []domain.Variant[[]string] {
	var out []domain.Variant[[]string]
	add := func(platform domain.TargetPlatform, file string) {
		for i := range out {
			if out[i].Platform == platform {
				out[i].Items = append(out[i].Items, file)
				return
			}
		}
		out = append(out, domain.Variant[[]string]{Platform: platform, Items: []string{file}})
	}

	for _, file := range files {
		rest, ok := strings.CutPrefix(file, libDir)
		if !ok {
			continue
		}
		dir, _, nested := strings.Cut(rest, "/")
		if !nested {
			add(domain.AnyPlatform, file)
			continue
		}
		if strings.EqualFold(dir, contractDir) {
			continue
		}
		platform, err := domain.ParsePlatform(dir)
		if err != nil {
			continue
		}
		if path.Dir(rest) != dir {
			// Assemblies are only taken from the platform folder itself.
			continue
		}
		add(platform, file)
	}

	for i := range out {
		slices.Sort(out[i].Items)
	}
	return out
}
