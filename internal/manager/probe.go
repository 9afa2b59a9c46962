package manager

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
)

// CachingProber wraps a media prober with an LRU cache keyed by
// path. Registering the same file repeatedly (drag-in of a folder,
// project reload) should not probe it more than once.
type CachingProber struct {
	inner models.MediaInfoProber
	cache *lru.Cache
}

func NewCachingProber(inner models.MediaInfoProber, size int) (*CachingProber, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating probe cache: %w", err)
	}
	return &CachingProber{
		inner: inner,
		cache: cache,
	}, nil
}

func (p *CachingProber) Probe(path string) (models.MediaInfo, error) {
	if entry, ok := p.cache.Get(path); ok {
		return entry.(models.MediaInfo), nil
	}

	info, err := p.inner.Probe(path)
	if err != nil {
		return models.MediaInfo{}, err
	}

	p.cache.Add(path, info)
	logger.Debugf("probed %s: %gs %dx%d", path, info.Duration, info.Width, info.Height)
	return info, nil
}

// AttachProber wraps the given prober with the configured cache and
// installs it on the session.
func (s *Manager) AttachProber(inner models.MediaInfoProber) error {
	prober, err := NewCachingProber(inner, s.Config.GetProbeCacheSize())
	if err != nil {
		return err
	}
	s.Prober = prober
	return nil
}
