package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// ErrProfileNotFound is returned by Loader.Get for an unknown name
var ErrProfileNotFound = errors.New("profile not found")

// Loader handles loading and caching calculator profiles from YAML files
type Loader struct {
	dir     string
	cache   map[string]*Profile
	cacheMu sync.RWMutex
	loaded  bool
}

// NewLoader creates a loader over every *.yaml file in dir
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Profile),
	}
}

// Load reads all profile files from the directory
func (l *Loader) Load() error {
	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReadDir, err)
	}

	cache := make(map[string]*Profile, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExtension) {
			continue
		}

		p, err := LoadFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf(ErrMsgLoadProfile+": %w", entry.Name(), err)
		}
		cache[strings.ToLower(p.Name)] = p
	}

	l.cache = cache
	l.loaded = true
	return nil
}

// Get returns a profile by name, loading the directory on first use
func (l *Loader) Get(name string) (*Profile, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	p, ok := l.cache[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// Names lists every loaded profile name in sorted order
func (l *Loader) Names() ([]string, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	names := make([]string, 0, len(l.cache))
	for _, p := range l.cache {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) ensureLoaded() error {
	l.cacheMu.RLock()
	loaded := l.loaded
	l.cacheMu.RUnlock()
	if loaded {
		return nil
	}
	return l.Load()
}

// LoadFile reads and validates a single profile file
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFile, err)
	}

	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes a profile document. Unknown keys are rejected so typos in
// option names fail loudly instead of silently using defaults.
func Parse(r io.Reader) (*Profile, error) {
	p := &Profile{Options: calculator.DefaultOptions()}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseYAML, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the sort criteria and player section. Options are
// validated by the calculator itself.
func (p *Profile) Validate() error {
	sortBy, err := domain.ParseSortCriteria(string(p.Sort))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidSort, err)
	}
	p.Sort = sortBy

	if state := p.PlayerState(); state != nil {
		if err := state.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgInvalidState, err)
		}
	}
	return nil
}
