package fs

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"io"
	"os"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

const hashChunkSize = 64 * 1024

// Hasher computes package integrity digests, reusing cached digests for unchanged archives.
type Hasher struct {
	store ports.IntegrityStore
}

// NewHasher creates a new Hasher. store may be nil to disable caching.
func NewHasher(store ports.IntegrityStore) *Hasher {
	return &Hasher{store: store}
}

// ComputeIntegrity returns the base64 SHA-512 digest of the package archive.
func (h *Hasher) ComputeIntegrity(ctx context.Context, pkg ports.PackageContent) (string, error) {
	archive := pkg.ArchivePath()

	var info os.FileInfo
	if archive != "" {
		var err error
		info, err = os.Stat(archive)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", archive)
		}
		if cached := h.lookup(archive); cached.Matches(info.Size(), info.ModTime()) {
			return cached.Digest, nil
		}
	}

	r, err := pkg.Open()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "package", pkg.Identity().String())
	}
	defer r.Close() //nolint:errcheck // Read-only stream

	digest, err := hashStream(ctx, r)
	if err != nil {
		return "", zerr.With(err, "package", pkg.Identity().String())
	}

	if info != nil && h.store != nil {
		// A failed cache write only costs a rehash next run.
		_ = h.store.Put(domain.IntegrityRecord{
			Path:    archive,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Digest:  digest,
		})
	}
	return digest, nil
}

func (h *Hasher) lookup(path string) *domain.IntegrityRecord {
	if h.store == nil {
		return nil
	}
	record, err := h.store.Get(path)
	if err != nil {
		return nil
	}
	return record
}

// hashStream digests r, checking ctx between chunks.
func hashStream(ctx context.Context, r io.Reader) (string, error) {
	digest := sha512.New()
	buf := make([]byte, hashChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = digest.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", zerr.Wrap(err, "failed to read package archive")
		}
	}
	return base64.StdEncoding.EncodeToString(digest.Sum(nil)), nil
}
