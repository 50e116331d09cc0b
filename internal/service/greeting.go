package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jask/suspenseaction/internal/action"
	"github.com/jask/suspenseaction/internal/database/repository"
)

// GreetingService greets a user by id. Greet has the action.Producer shape.
type GreetingService struct {
	Users *repository.UserRepo
	// Delay simulates a slow backend so the pending state is visible.
	Delay time.Duration
}

// Greet reads the "id" input and returns "hello <name>".
func (s *GreetingService) Greet(ctx context.Context, in action.Inputs) (string, error) {
	id, err := in.Int("id")
	if err != nil {
		return "", fmt.Errorf("greet: %w", err)
	}
	if err := wait(ctx, s.Delay); err != nil {
		return "", err
	}
	u, err := s.Users.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("greet: %w", err)
	}
	return "hello " + u.Name, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
