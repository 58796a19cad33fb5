package serviceiface

// Service is a unit managed by the app manager. Start must not block;
// long-running work belongs in goroutines owned by the service.
type Service interface {
	Name() string
	Start() error
	Stop() error
}
