package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Emitter = (*Emitter)(nil)

// defaultSourceExcludes are never copied from a project directory.
var defaultSourceExcludes = []string{"bin/**", "obj/**"}

// Emitter writes the bundle output tree.
type Emitter struct {
	walker *Walker
	logger ports.Logger
}

// NewEmitter creates a new Emitter.
func NewEmitter(walker *Walker, logger ports.Logger) *Emitter {
	return &Emitter{walker: walker, logger: logger}
}

// Emit writes the lock file, packages, runtimes, project sources and web roots below root.OutputPath.
// Files whose content already matches the destination are left untouched.
// With root.Overwrite, files left over from an earlier bundle are removed.
func (e *Emitter) Emit(ctx context.Context, root *domain.BundleRoot, lock *domain.LockFile) error {
	if err := e.emit(ctx, root, lock); err != nil {
		if errors.Is(err, domain.ErrOutputNotEmpty) || errors.Is(err, context.Canceled) {
			return err
		}
		return zerr.Wrap(err, domain.ErrEmitFailed.Error())
	}
	return nil
}

func (e *Emitter) emit(ctx context.Context, root *domain.BundleRoot, lock *domain.LockFile) error {
	out := root.OutputPath
	if !root.Overwrite {
		empty, err := isEmptyDir(out)
		if err != nil {
			return err
		}
		if !empty {
			return zerr.With(zerr.Wrap(domain.ErrOutputNotEmpty, "output directory is not empty, use --overwrite"), "path", out)
		}
	}

	c := &copier{ctx: ctx, walker: e.walker, written: make(map[string]bool)}
	appRoot := root.AppRootPath()

	if lock != nil {
		data, err := lock.Marshal()
		if err != nil {
			return zerr.Wrap(err, "failed to marshal lock file")
		}
		if err := c.writeFile(filepath.Join(appRoot, domain.LockFileName), data); err != nil {
			return err
		}
	}

	for _, pkg := range root.Packages {
		id := pkg.Library.Identity
		dst := filepath.Join(appRoot, domain.PackagesDirName, id.Name.String(), id.Version.String())
		if err := c.copyTree(pkg.Library.Path, dst, nil); err != nil {
			return zerr.With(err, "package", id.String())
		}
	}

	for _, rt := range root.Runtimes {
		dst := filepath.Join(appRoot, domain.RuntimesDirName, rt.Name)
		if err := c.copyTree(rt.Path, dst, nil); err != nil {
			return zerr.With(err, "runtime", rt.Name)
		}
	}

	for _, bp := range root.Projects {
		if err := e.emitProject(c, root, bp); err != nil {
			return zerr.With(err, "project", bp.Project.Name)
		}
	}

	if root.Overwrite {
		if err := c.prune(appRoot); err != nil {
			return err
		}
	}

	e.logger.Verbose(formatCopyStats(c))
	return nil
}

func (e *Emitter) emitProject(c *copier, root *domain.BundleRoot, bp domain.BundleProject) error {
	project := bp.Project
	dst := filepath.Join(root.AppRootPath(), domain.SourceDirName, project.Name)

	webRoot := bp.WebRoot
	if webRoot == "" && project == root.Project {
		webRoot = project.WebRoot
	}

	if root.NoSource {
		manifest := filepath.Join(project.Directory, domain.ProjectFileName)
		if err := c.copyFile(manifest, filepath.Join(dst, domain.ProjectFileName)); err != nil {
			return err
		}
	} else {
		excludes := append([]string(nil), defaultSourceExcludes...)
		excludes = append(excludes, project.BundleExclude...)
		if rel, ok := within(project.Directory, root.OutputPath); ok {
			excludes = append(excludes, rel, rel+"/**")
		}
		if webRoot != "" {
			excludes = append(excludes, filepath.ToSlash(webRoot), filepath.ToSlash(webRoot)+"/**")
		}
		if err := c.copyTree(project.Directory, dst, excludes); err != nil {
			return err
		}
	}

	if webRoot == "" {
		return nil
	}
	webRootOut := bp.WebRootOut
	if webRootOut == "" {
		webRootOut = webRoot
	}
	return c.copyTree(filepath.Join(project.Directory, webRoot), filepath.Join(root.OutputPath, webRootOut), project.BundleExclude)
}

// copier copies trees, skipping destination files whose content already matches.
type copier struct {
	ctx     context.Context
	walker  *Walker
	written map[string]bool
	copied  int
	skipped int
}

func (c *copier) copyTree(src, dst string, excludes []string) error {
	for rel, err := range c.walker.WalkFiles(src, excludes) {
		if err != nil {
			return err
		}
		if err := c.copyFile(filepath.Join(src, filepath.FromSlash(rel)), filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			return err
		}
	}
	return nil
}

func (c *copier) copyFile(src, dst string) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	c.written[dst] = true

	same, err := sameContent(src, dst)
	if err != nil {
		return err
	}
	if same {
		c.skipped++
		return nil
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the bundle root
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path comes from the bundle root
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	c.copied++
	return nil
}

func (c *copier) writeFile(dst string, data []byte) error {
	c.written[dst] = true
	if existing, err := os.ReadFile(dst); err == nil && xxhash.Sum64(existing) == xxhash.Sum64(data) { //nolint:gosec // Path comes from the bundle root
		c.skipped++
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}
	if err := os.WriteFile(dst, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", dst)
	}
	c.copied++
	return nil
}

// prune removes files below dir that this run did not write.
func (c *copier) prune(dir string) error {
	var stale []string
	for rel, err := range c.walker.WalkFiles(dir, nil) {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if !c.written[path] {
			stale = append(stale, path)
		}
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove stale file"), "path", path)
		}
	}
	return nil
}

// sameContent reports whether dst exists with the same size and xxhash as src.
func sameContent(src, dst string) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", dst)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", src)
	}
	if srcInfo.Size() != dstInfo.Size() {
		return false, nil
	}

	srcHash, err := fileHash(src)
	if err != nil {
		return false, err
	}
	dstHash, err := fileHash(dst)
	if err != nil {
		return false, err
	}
	return srcHash == dstHash, nil
}

// fileHash computes the XXHash of a file's content.
func fileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read output directory"), "path", dir)
	}
	return len(entries) == 0, nil
}

// within returns target relative to base as a slash path when target lies inside base.
func within(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func formatCopyStats(c *copier) string {
	return fmt.Sprintf("Copied %d files, %d unchanged", c.copied, c.skipped)
}
