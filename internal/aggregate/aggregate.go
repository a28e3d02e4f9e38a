// Package aggregate joins a company's job applications with the matching
// student profiles into one view model.
package aggregate

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"talentbridge-engine/internal/domain"
)

// ErrMissingCompanyID aborts aggregation before any network call is made.
var ErrMissingCompanyID = errors.New("no company id available")

// Source is the slice of the gateway the aggregator needs.
type Source interface {
	FetchJobApplications(ctx context.Context, companyID string) ([]domain.JobApplication, error)
	FetchStudentProfile(ctx context.Context, studentID string) (*domain.StudentProfile, error)
}

// Board is the joined view model. Applications keeps the order the backend
// returned; Students maps studentID to profile, nil when that one lookup
// failed.
type Board struct {
	Applications []domain.JobApplication           `json:"applications"`
	Students     map[string]*domain.StudentProfile `json:"students"`
}

type Aggregator struct {
	src Source
	log *logrus.Entry
}

func New(src Source, log *logrus.Entry) *Aggregator {
	return &Aggregator{src: src, log: log}
}

// Aggregate fetches the application list, then fans out one profile lookup
// per distinct student and joins the results. The list fetch failing fails
// the whole aggregation; a profile lookup failing only blanks that student.
// Lookups complete in any order, but all are awaited before returning.
func (a *Aggregator) Aggregate(ctx context.Context, companyID string) (*Board, error) {
	if companyID == "" {
		return nil, ErrMissingCompanyID
	}

	apps, err := a.src.FetchJobApplications(ctx, companyID)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Applications: apps,
		Students:     make(map[string]*domain.StudentProfile, len(apps)),
	}
	if len(apps) == 0 {
		return board, nil
	}

	ids := make([]string, 0, len(apps))
	seen := make(map[string]bool, len(apps))
	for _, app := range apps {
		if seen[app.StudentID] {
			continue
		}
		seen[app.StudentID] = true
		ids = append(ids, app.StudentID)
	}

	type lookup struct {
		id      string
		profile *domain.StudentProfile
	}

	var g errgroup.Group
	results := make(chan lookup, len(ids))

	for _, id := range ids {
		id := id
		g.Go(func() error {
			profile, err := a.src.FetchStudentProfile(ctx, id)
			if err != nil {
				// best-effort: one missing profile must not sink the batch
				a.log.WithField("studentId", id).WithError(err).Warn("student lookup failed")
				results <- lookup{id: id}
				return nil
			}
			results <- lookup{id: id, profile: profile}
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	for r := range results {
		board.Students[r.id] = r.profile
	}
	return board, nil
}
