package service

import (
	"os"
	"sync"

	"github.com/katalvlaran/seqdist/corpus"
	"github.com/katalvlaran/seqdist/distmat"
)

// Service owns the pipeline configuration: where the corpus lives,
// where the artifact goes, and the lazily loaded in-memory matrix.
// The matrix is populated at most once per Service, either by
// ComputeAndPersist or by the first Distance call; it is read-only
// afterwards. Safe for concurrent Distance calls.
type Service struct {
	inputPath    string
	artifactPath string
	buildOpts    []distmat.Option

	mu     sync.Mutex
	matrix *distmat.Matrix
}

// Option configures a Service at construction.
type Option func(*Service)

// WithBuildOptions forwards builder options (workers, kernel memory
// mode) to the all-pairs computation.
func WithBuildOptions(opts ...distmat.Option) Option {
	return func(s *Service) { s.buildOpts = opts }
}

// New returns a Service bound to the given corpus input path and
// distance artifact path.
func New(inputPath, artifactPath string, opts ...Option) *Service {
	s := &Service{inputPath: inputPath, artifactPath: artifactPath}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ComputeAndPersist builds the all-pairs distance matrix for the input
// corpus and writes the artifact. When the artifact already exists the
// call is a no-op: presence is the sole reuse signal and the existing
// file is trusted blindly (see the package doc for the implications).
//
// Errors: corpus.ErrInputNotFound when the input is missing; write
// failures from the codec otherwise.
func (s *Service) ComputeAndPersist() error {
	if s.ArtifactExists() {
		return nil
	}

	c, err := corpus.Load(s.inputPath)
	if err != nil {
		return err
	}

	m := distmat.Build(c, s.buildOpts...)
	if err = distmat.WriteFile(m, s.artifactPath); err != nil {
		return err
	}

	// Keep the freshly built matrix resident so lookups skip the reload.
	s.mu.Lock()
	s.matrix = m
	s.mu.Unlock()

	return nil
}

// ArtifactExists reports whether the persisted distance file is
// present. Callers use it to decide whether computation can be skipped;
// no content validation is performed.
func (s *Service) ArtifactExists() bool {
	_, err := os.Stat(s.artifactPath)

	return err == nil
}

// Distance returns the stored distance for the unordered pair {i, j}
// of 1-based corpus line numbers. Indices below 1 fail with
// distmat.ErrInvalidIndex before any I/O. When no matrix is resident
// the artifact is loaded first (distmat.ErrArtifactNotFound if
// missing); an absent pair fails with distmat.ErrPairNotFound.
func (s *Service) Distance(i, j int) (float64, error) {
	if i < 1 || j < 1 {
		return 0, distmat.ErrInvalidIndex
	}

	m, err := s.load()
	if err != nil {
		return 0, err
	}

	return m.Lookup(i, j)
}

// load returns the resident matrix, reconstituting it from the
// artifact on first use. The matrix is loaded at most once.
func (s *Service) load() (*distmat.Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matrix != nil {
		return s.matrix, nil
	}

	m, err := distmat.ReadFile(s.artifactPath)
	if err != nil {
		return nil, err
	}
	s.matrix = m

	return m, nil
}
