package runner

import (
	"context"
	"time"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
	"mercator-hq/snapper/pkg/telemetry/logging"
)

// Plan is the result of a dry run.
type Plan struct {
	// Prefix is the identifier prefix the policy owns.
	Prefix string `json:"prefix"`

	// NextIdentifier is the name a run started at EvaluatedAt would use.
	NextIdentifier string `json:"next_identifier"`

	// EvaluatedAt is the instant expiry was evaluated against.
	EvaluatedAt time.Time `json:"evaluated_at"`

	// Decisions holds one entry per snapshot the policy owns.
	Decisions []retention.Decision `json:"decisions"`
}

// Expired returns the number of snapshots a run would delete.
func (p *Plan) Expired() int {
	n := 0
	for _, d := range p.Decisions {
		if d.Delete {
			n++
		}
	}
	return n
}

// Plan lists the cluster's snapshots and evaluates them against policy
// without creating or deleting anything. A list failure is returned as a
// *outcome.StageError.
func (r *Runner) Plan(ctx context.Context, policy retention.Policy) (*Plan, error) {
	now := r.now()
	ctx = logging.WithCluster(ctx, policy.ClusterIdentifier)

	all, err := r.store.List(ctx, policy.ClusterIdentifier)
	if err != nil {
		return nil, outcome.NewStageError(outcome.StageList, err)
	}

	p := &Plan{
		Prefix:         policy.Prefix(),
		NextIdentifier: policy.NewIdentifier(now),
		EvaluatedAt:    now,
		Decisions:      retention.Decide(all, policy, now),
	}

	r.logger.InfoContext(ctx, "plan evaluated",
		"listed", len(all),
		"expired", p.Expired(),
	)

	return p, nil
}
