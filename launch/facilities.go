package launch

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=launch

import "context"

// Executor runs external commands.
type Executor interface {
	// Start spawns the command and returns its pid without waiting for it.
	Start(ctx context.Context, cmd Command) (int, error)
	// Run executes the command and waits for it to exit.
	Run(ctx context.Context, cmd Command) error
}
