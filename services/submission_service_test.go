package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestListOwnedScopesToUserOnly(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submissions` WHERE user_id = \\? ORDER BY created_at DESC"),
			args:    []driver.Value{int64(42)},
			columns: []string{"submission_id", "name", "user_id", "created_at"},
			rows: [][]driver.Value{
				{int64(1), "Luna Arts", int64(42), time.Now()},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submission_platforms`"),
			args:    []driver.Value{int64(1)},
			columns: []string{"submission_id", "platform_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submission_tags`"),
			args:    []driver.Value{int64(1)},
			columns: []string{"submission_id", "tag_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewSubmissionService(db)
	submissions, err := svc.ListOwned(UserIdentity(42))
	if err != nil {
		t.Fatalf("ListOwned returned error: %v", err)
	}
	if len(submissions) != 1 || submissions[0].SubmissionID != 1 {
		t.Fatalf("unexpected submissions: %+v", submissions)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetOwnedDeniesForeignAndMissingUniformly(t *testing.T) {
	// A row owned by someone else.
	foreignSteps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submissions` WHERE submission_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"submission_id", "name", "user_id"},
			rows: [][]driver.Value{
				{int64(10), "Luna Arts", int64(2)},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submission_platforms`"),
			args:    []driver.Value{int64(10)},
			columns: []string{"submission_id", "platform_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `proof_submissions`"),
			args:    []driver.Value{int64(10)},
			columns: []string{"proof_id", "creator_submission_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submission_tags`"),
			args:    []driver.Value{int64(10)},
			columns: []string{"submission_id", "tag_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `users`"),
			args:    []driver.Value{int64(2)},
			columns: []string{"user_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, foreignSteps)
	defer cleanup()

	svc := NewSubmissionService(db)
	_, foreignErr := svc.GetOwned(10, UserIdentity(1))
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	// A row that does not exist at all.
	missingSteps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `creator_submissions` WHERE submission_id = \\?"),
			args:    []driver.Value{int64(999)},
			columns: []string{"submission_id", "name", "user_id"},
			rows:    [][]driver.Value{},
		},
	}

	db2, state2, cleanup2 := newScriptedGormDB(t, missingSteps)
	defer cleanup2()

	svc2 := NewSubmissionService(db2)
	_, missingErr := svc2.GetOwned(999, UserIdentity(1))
	if err := state2.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	// Both cases must yield the same error, no existence leak.
	if !errors.Is(foreignErr, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for foreign row, got %v", foreignErr)
	}
	if !errors.Is(missingErr, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for missing row, got %v", missingErr)
	}
}

func TestCreateRequiresIdentity(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewSubmissionService(db)
	_, err := svc.Create(SubmissionPayload{Name: "Luna Arts"}, Identity{})
	if !errors.Is(err, ErrIdentityRequired) {
		t.Fatalf("expected ErrIdentityRequired, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected database access: %v", err)
	}
}
