package bellman

import (
	"sort"
	"sync"
)

// UpdaterFactory is an interface for creating Updater instances.
// It allows flexible strategy instantiation and registration, enabling
// dependency injection and easier testing.
type UpdaterFactory interface {
	// Create creates a new Updater instance by name.
	// Returns an error if the strategy is not registered.
	Create(name string) (Updater, error)

	// Get returns an existing Updater instance by name.
	// Returns an error if the strategy is not registered.
	Get(name string) (Updater, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy to the factory.
	Register(name string, creator func() coreUpdater) error

	// GetAll returns a map of all registered updaters.
	GetAll() map[string]Updater
}

// DefaultFactory is the default implementation of UpdaterFactory.
// It maintains a thread-safe registry of strategy creators and caches
// Updater instances for reuse.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]func() coreUpdater
	updaters map[string]Updater
}

// NewDefaultFactory creates a new DefaultFactory with the standard update
// strategies pre-registered.
//
// Pre-registered strategies:
//   - "naive": NaiveLoop (per-element nested iteration, baseline)
//   - "vectorized": Vectorized (gonum rank-one broadcast)
//   - "compiled": UnrolledLoop (flat slices, 4x unrolled)
//   - "parallel": ParallelLoop (row-partitioned, errgroup)
//
// Returns:
//   - *DefaultFactory: A new factory with default strategies registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators: make(map[string]func() coreUpdater),
		updaters: make(map[string]Updater),
	}

	// Register the default strategies
	_ = f.Register("naive", func() coreUpdater { return &NaiveLoop{} })
	_ = f.Register("vectorized", func() coreUpdater { return &Vectorized{} })
	_ = f.Register("compiled", func() coreUpdater { return &UnrolledLoop{} })
	_ = f.Register("parallel", func() coreUpdater { return &ParallelLoop{} })

	return f
}

// Register adds a new strategy to the factory.
// The creator function is called lazily when the strategy is first requested.
// If a strategy with the same name already exists, it is replaced.
func (f *DefaultFactory) Register(name string, creator func() coreUpdater) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear cached updater so it will be recreated with the new creator
	delete(f.updaters, name)
	return nil
}

// Create creates a new Updater instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
func (f *DefaultFactory) Create(name string) (Updater, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, &UnknownUpdaterError{Name: name}
	}
	return NewUpdater(creator()), nil
}

// Get returns an Updater instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
func (f *DefaultFactory) Get(name string) (Updater, error) {
	// Check cache first with read lock
	f.mu.RLock()
	if u, exists := f.updaters[name]; exists {
		f.mu.RUnlock()
		return u, nil
	}
	f.mu.RUnlock()

	// Create new updater with write lock
	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if u, exists := f.updaters[name]; exists {
		return u, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, &UnknownUpdaterError{Name: name}
	}

	u := NewUpdater(creator())
	f.updaters[name] = u
	return u, nil
}

// List returns a sorted list of all registered strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered updaters, lazily initializing any
// that haven't been created yet. The returned map is a copy.
func (f *DefaultFactory) GetAll() map[string]Updater {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.updaters[name]; !exists {
			f.updaters[name] = NewUpdater(creator())
		}
	}

	result := make(map[string]Updater, len(f.updaters))
	for name, u := range f.updaters {
		result[name] = u
	}
	return result
}

// MustGet is like Get but panics if the strategy is not found. Useful in
// initialization code where a missing strategy is a programming error.
func (f *DefaultFactory) MustGet(name string) Updater {
	u, err := f.Get(name)
	if err != nil {
		panic("bellman: required updater not found: " + name)
	}
	return u
}

// Has checks if a strategy with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
// This is a convenience for applications that don't need multiple factories.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterUpdater registers a strategy in the global factory.
// This is a convenience function for adding custom strategies.
func RegisterUpdater(name string, creator func() coreUpdater) error {
	return globalFactory.Register(name, creator)
}
