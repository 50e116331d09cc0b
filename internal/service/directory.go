package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/jask/suspenseaction/internal/action"
	"github.com/jask/suspenseaction/internal/database/repository"
)

// ErrNoMatch is returned when no user name is close enough to the query.
var ErrNoMatch = errors.New("no matching user")

// maxDistanceRatio bounds edit distance relative to the longer string.
const maxDistanceRatio = 0.4

// DirectoryService resolves free-text queries to users.
type DirectoryService struct {
	Users *repository.UserRepo
	Delay time.Duration
}

// Match is the closest user to a query.
type Match struct {
	User     repository.User
	Distance int
}

// Closest returns the user whose name has the smallest edit distance to
// query. Ties go to the lower id.
func (s *DirectoryService) Closest(ctx context.Context, query string) (Match, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Match{}, ErrNoMatch
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return Match{}, fmt.Errorf("list users: %w", err)
	}
	best := Match{Distance: -1}
	for _, u := range users {
		name := strings.ToLower(u.Name)
		d := levenshtein.ComputeDistance(q, name)
		if float64(d)/float64(max(len(q), len(name))) >= maxDistanceRatio {
			continue
		}
		if best.Distance < 0 || d < best.Distance {
			best = Match{User: u, Distance: d}
		}
	}
	if best.Distance < 0 {
		return Match{}, fmt.Errorf("%q: %w", query, ErrNoMatch)
	}
	return best, nil
}

// Lookup reads the "query" input and describes the closest user. It has the
// action.Producer shape.
func (s *DirectoryService) Lookup(ctx context.Context, in action.Inputs) (string, error) {
	query, err := in.String("query")
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}
	if strings.TrimSpace(query) == "" {
		return "type a name to search", nil
	}
	if err := wait(ctx, s.Delay); err != nil {
		return "", err
	}
	m, err := s.Closest(ctx, query)
	if err != nil {
		return "", err
	}
	if m.Distance == 0 {
		return fmt.Sprintf("found %s (#%d)", m.User.Name, m.User.ID), nil
	}
	return fmt.Sprintf("did you mean %s (#%d)?", m.User.Name, m.User.ID), nil
}
