package bellman

import "context"

// MockUpdater is a mock implementation of the Updater interface.
// It is exported to allow external packages (service, server, cli) to use it
// for testing.
type MockUpdater struct {
	Err error
	Fn  func(ctx context.Context, g *Grid) error
}

// Name returns the updater name.
func (m *MockUpdater) Name() string {
	return "mock"
}

// Update returns the pre-configured Err, or calls Fn if provided.
func (m *MockUpdater) Update(ctx context.Context, progressChan chan<- ProgressUpdate, updaterIndex int, g *Grid, opts Options) error {
	if m.Fn != nil {
		return m.Fn(ctx, g)
	}
	if progressChan != nil {
		progressChan <- ProgressUpdate{UpdaterIndex: updaterIndex, Value: 1.0}
	}
	return m.Err
}

// TestFactory is an UpdaterFactory implementation designed for testing.
// It allows tests in other packages to create factories with mock updaters.
type TestFactory struct {
	updaters map[string]Updater
}

// NewTestFactory creates a factory pre-populated with the given updaters.
func NewTestFactory(updaters map[string]Updater) *TestFactory {
	if updaters == nil {
		updaters = make(map[string]Updater)
	}
	return &TestFactory{updaters: updaters}
}

// Create returns the updater by name.
func (f *TestFactory) Create(name string) (Updater, error) {
	return f.Get(name)
}

// Get returns the updater by name.
func (f *TestFactory) Get(name string) (Updater, error) {
	u, ok := f.updaters[name]
	if !ok {
		return nil, &UnknownUpdaterError{Name: name}
	}
	return u, nil
}

// List returns all registered updater names.
func (f *TestFactory) List() []string {
	names := make([]string, 0, len(f.updaters))
	for name := range f.updaters {
		names = append(names, name)
	}
	return names
}

// Register is a no-op for TestFactory as updaters are provided at construction.
func (f *TestFactory) Register(name string, creator func() coreUpdater) error {
	return nil
}

// GetAll returns all updaters.
func (f *TestFactory) GetAll() map[string]Updater {
	result := make(map[string]Updater, len(f.updaters))
	for k, v := range f.updaters {
		result[k] = v
	}
	return result
}
