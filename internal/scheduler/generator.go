package scheduler

import (
	"context"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	DefaultMaxCandidates = 200
	DefaultMaxNodes      = 1_000_000

	cancelCheckInterval = 1024
)

// StopReason records why candidate enumeration ended.
type StopReason string

const (
	StopExhausted    StopReason = "exhausted"
	StopCandidateCap StopReason = "candidate_cap"
	StopNodeLimit    StopReason = "node_limit"
)

type GenerateOptions struct {
	MaxCredits    int
	MaxCandidates int // <= 0 means DefaultMaxCandidates
	MaxNodes      int // <= 0 means DefaultMaxNodes
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	return o
}

type GenerateResult struct {
	Candidates   []domain.Candidate
	NodesVisited int
	StopReason   StopReason
}

// Truncated reports whether the search halted before exploring every branch.
func (r GenerateResult) Truncated() bool {
	return r.StopReason == StopCandidateCap || r.StopReason == StopNodeLimit
}

// GenerateCandidates enumerates conflict-free, credit-bounded combinations of
// one section per course, depth first. At each course the skip branch is
// explored before the include branches, which follow declared section order.
// The search halts once MaxCandidates have been emitted or MaxNodes visited,
// so the output is a deterministic prefix of the full candidate space.
//
// Every section of every eligible course must carry at least one valid
// timeslot; otherwise a *domain.CatalogError is returned and nothing is
// enumerated. Context cancellation is also fatal.
func GenerateCandidates(ctx context.Context, eligible []domain.Course, opts GenerateOptions) (GenerateResult, error) {
	for _, c := range eligible {
		if err := c.ValidateSchedulable(); err != nil {
			return GenerateResult{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}

	s := &search{
		ctx:     ctx,
		courses: eligible,
		opts:    opts.withDefaults(),
		path:    make([]domain.Pick, 0, len(eligible)),
		stop:    StopExhausted,
	}
	s.visit(0)
	if s.err != nil {
		return GenerateResult{}, s.err
	}
	return GenerateResult{
		Candidates:   s.out,
		NodesVisited: s.nodes,
		StopReason:   s.stop,
	}, nil
}

// search holds the state of one enumeration. path is only extended and
// truncated around a recursive call; emitted candidates are copies.
type search struct {
	ctx     context.Context
	courses []domain.Course
	opts    GenerateOptions

	path    []domain.Pick
	credits int

	out   []domain.Candidate
	nodes int
	stop  StopReason
	err   error
}

// visit explores the subtree rooted at course index i and returns false once
// the whole search must halt.
func (s *search) visit(i int) bool {
	if s.credits > s.opts.MaxCredits {
		return true
	}
	if s.nodes >= s.opts.MaxNodes {
		s.stop = StopNodeLimit
		return false
	}
	s.nodes++
	if s.nodes%cancelCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return false
		}
	}

	if i == len(s.courses) {
		picks := make([]domain.Pick, len(s.path))
		copy(picks, s.path)
		s.out = append(s.out, domain.Candidate{Picks: picks})
		if len(s.out) >= s.opts.MaxCandidates {
			s.stop = StopCandidateCap
			return false
		}
		return true
	}

	if !s.visit(i + 1) {
		return false
	}

	course := s.courses[i]
	for _, sec := range course.Sections {
		if conflictsWithAny(s.path, sec) {
			continue
		}
		s.path = append(s.path, domain.Pick{Course: course, Section: sec})
		s.credits += course.Credits
		ok := s.visit(i + 1)
		s.credits -= course.Credits
		s.path = s.path[:len(s.path)-1]
		if !ok {
			return false
		}
	}
	return true
}
