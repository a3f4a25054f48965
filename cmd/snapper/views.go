package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mercator-hq/snapper/pkg/config"
	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/runner"
)

// runView prints the report of one run: the success report as JSON, or the
// failure report when a stage failed.
type runView struct {
	o      *outcome.Outcome
	report any
}

func newRunView(o *outcome.Outcome) runView {
	if o.Succeeded() {
		return runView{o: o, report: o.SuccessReport()}
	}
	return runView{o: o, report: o.FailureReport()}
}

func (v runView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.report)
}

func (v runView) Header() []string {
	return []string{"SNAPSHOT", "RESULT"}
}

func (v runView) Rows() [][]string {
	var rows [][]string
	if v.o.NewSnapshot != nil {
		rows = append(rows, []string{v.o.NewSnapshot.Identifier, "created"})
	}
	for _, id := range v.o.Deleted {
		rows = append(rows, []string{id, "deleted"})
	}
	for _, id := range v.o.FailedDeletes {
		rows = append(rows, []string{id, "delete failed"})
	}
	if v.o.Err != nil {
		rows = append(rows, []string{"-", fmt.Sprintf("%s failed: %v", v.o.Err.Stage, v.o.Err.Cause)})
	}
	return rows
}

// planView renders a dry run.
type planView struct {
	*runner.Plan
}

func (v planView) Header() []string {
	return []string{"SNAPSHOT", "CREATED", "AGE", "ACTION"}
}

func (v planView) Rows() [][]string {
	rows := make([][]string, 0, len(v.Decisions))
	for _, d := range v.Decisions {
		action := "keep"
		if d.Delete {
			action = "delete"
		}
		age := v.EvaluatedAt.Sub(d.Snapshot.CreatedAt).Truncate(time.Second)
		rows = append(rows, []string{
			d.Snapshot.Identifier,
			d.Snapshot.CreatedAt.UTC().Format(time.RFC3339),
			age.String(),
			action,
		})
	}
	return rows
}

// validateView summarizes a configuration that passed validation.
type validateView struct {
	Valid    bool     `json:"valid"`
	Cluster  string   `json:"cluster"`
	Prefix   string   `json:"prefix"`
	Schedule string   `json:"schedule"`
	Publish  bool     `json:"publish"`
	Warnings []string `json:"warnings"`
}

func newValidateView(cfg *config.Config) validateView {
	warnings := config.Warnings(cfg)
	if warnings == nil {
		warnings = []string{}
	}
	return validateView{
		Valid:    true,
		Cluster:  cfg.ClusterIdentifier,
		Prefix:   cfg.Policy().Prefix(),
		Schedule: cfg.Schedule,
		Publish:  cfg.PublishingEnabled(),
		Warnings: warnings,
	}
}

func (v validateView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "configuration is valid\n")
	fmt.Fprintf(&b, "  cluster:  %s\n", v.Cluster)
	fmt.Fprintf(&b, "  prefix:   %s\n", v.Prefix)
	fmt.Fprintf(&b, "  schedule: %s\n", v.Schedule)
	fmt.Fprintf(&b, "  publish:  %t", v.Publish)
	for _, w := range v.Warnings {
		fmt.Fprintf(&b, "\nwarning: %s", w)
	}
	return b.String()
}
