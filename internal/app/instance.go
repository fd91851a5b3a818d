package app

import "sync"

// The per-invocation runtime reuses one application instance per execution
// context because construction is expensive relative to request handling.
// The instance is reachable only through Instance; there is no bare global.
var (
	instanceMu sync.Mutex
	instance   *Application
)

// Instance returns the process-wide application, constructing it on first
// use. Construction is single-flight: concurrent first calls block until one
// build finishes. A failed build is not cached, so a later call may retry.
func Instance(opts Options) (*Application, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance, nil
	}

	built, err := New(opts)
	if err != nil {
		return nil, err
	}
	instance = built
	return instance, nil
}

// ResetInstance discards the cached application. Test helper only.
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}
