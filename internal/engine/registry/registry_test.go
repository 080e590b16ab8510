package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/core/ports/mocks"
	"go.trai.ch/bundle/internal/engine/registry"
	"go.trai.ch/bundle/internal/engine/resolution"
	"go.uber.org/mock/gomock"
)

var (
	dnx  = domain.MustParsePlatform("dnx451")
	core = domain.MustParsePlatform("dnxcore50")

	appID = domain.NewLibraryIdentity("App", "1.0.0")
	fooID = domain.NewLibraryIdentity("Foo", "1.0.0")
	barID = domain.NewLibraryIdentity("Bar", "2.0.0")
)

func result(platform domain.TargetPlatform, app *domain.Project, pkgs map[domain.LibraryIdentity]ports.PackageContent, libs ...domain.LibraryDescription) *resolution.Result {
	all := append([]domain.LibraryDescription{{Identity: appID, Kind: domain.LibraryKindProject, Resolved: true}}, libs...)
	return &resolution.Result{
		Context:  domain.NewResolutionContext(platform, "/packages", all),
		Packages: pkgs,
		Projects: map[domain.LibraryIdentity]*domain.Project{appID: app},
	}
}

func pkgLib(id domain.LibraryIdentity) domain.LibraryDescription {
	return domain.LibraryDescription{Identity: id, Kind: domain.LibraryKindPackage, Resolved: true}
}

func TestRegistry_MergesAcrossPlatforms(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	foo := mocks.NewMockPackageContent(ctrl)
	bar := mocks.NewMockPackageContent(ctrl)
	app := &domain.Project{Name: "App", Version: "1.0.0"}

	dnxRes := result(dnx, app, map[domain.LibraryIdentity]ports.PackageContent{fooID: foo, barID: bar}, pkgLib(fooID), pkgLib(barID))
	coreRes := result(core, app, map[domain.LibraryIdentity]ports.PackageContent{fooID: foo}, pkgLib(fooID))

	reg := registry.New()
	reg.Register(dnxRes)
	reg.Register(coreRes)

	assert.Equal(t, []*domain.ResolutionContext{dnxRes.Context, coreRes.Context}, reg.Contexts())

	packages := reg.Packages()
	require.Len(t, packages, 2)
	assert.Equal(t, fooID, packages[0].Library.Identity)
	assert.Same(t, foo, packages[0].Content)
	assert.Equal(t, []*domain.ResolutionContext{dnxRes.Context, coreRes.Context}, packages[0].Contexts)
	assert.Equal(t, barID, packages[1].Library.Identity)
	assert.Equal(t, []*domain.ResolutionContext{dnxRes.Context}, packages[1].Contexts)

	projects := reg.Projects()
	require.Len(t, projects, 1)
	assert.Same(t, app, projects[0].Project)
	assert.Len(t, projects[0].Contexts, 2)

	var order []domain.LibraryIdentity
	for id, ctxs := range reg.Libraries() {
		order = append(order, id)
		assert.NotEmpty(t, ctxs)
	}
	assert.Equal(t, []domain.LibraryIdentity{appID, fooID, barID}, order)

	depCtx := reg.DependencyContexts()
	assert.Len(t, depCtx[fooID], 2)
	assert.Len(t, depCtx[barID], 1)
	assert.False(t, reg.HasUnresolved())
}

func TestRegistry_UnresolvedIsNotAPackage(t *testing.T) {
	t.Parallel()

	missing := domain.LibraryDescription{Identity: domain.NewLibraryIdentity("Missing", "1.0"), Kind: domain.LibraryKindUnresolved}
	reg := registry.New()
	reg.Register(result(dnx, &domain.Project{Name: "App", Version: "1.0.0"}, nil, missing))

	assert.Empty(t, reg.Packages())
	assert.True(t, reg.HasUnresolved())
	assert.Len(t, reg.ContextsOf(missing.Identity), 1)
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	app := &domain.Project{Name: "App", Version: "1.0.0"}
	reg := registry.New()

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			reg.Register(result(dnx, app, nil, pkgLib(fooID)))
		})
	}
	wg.Wait()

	require.Len(t, reg.Packages(), 1)
	assert.Len(t, reg.Packages()[0].Contexts, 16)
	assert.Len(t, reg.Contexts(), 16)
}
