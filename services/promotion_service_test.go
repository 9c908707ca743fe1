package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"creator-directory-api/models"

	"github.com/go-sql-driver/mysql"
)

var (
	submissionLoadPattern = regexp.MustCompile("SELECT .* FROM `creator_submissions` WHERE submission_id = \\?")
	platformJoinPattern   = regexp.MustCompile("SELECT .* FROM `creator_submission_platforms`")
	tagJoinPattern        = regexp.MustCompile("SELECT .* FROM `creator_submission_tags`")
	proofLoadPattern      = regexp.MustCompile("SELECT .* FROM `proof_submissions`")
	creatorInsertPattern  = regexp.MustCompile("INSERT INTO `creators`")
	ledgerInsertPattern   = regexp.MustCompile("INSERT INTO `status_entries`")
	ledgerReadPattern     = regexp.MustCompile("SELECT .* FROM `status_entries` WHERE entity_type = \\? AND entity_id = \\? ORDER BY recorded_at DESC")
	proofCountPattern     = regexp.MustCompile("SELECT count\\(\\*\\) FROM `creator_proofs` WHERE creator_id = \\? AND url = \\? AND image_url = \\?")
	proofInsertPattern    = regexp.MustCompile("INSERT INTO `creator_proofs`")
	existingLookupPattern = regexp.MustCompile("SELECT .* FROM `creators` WHERE source_submission_id = \\?")
)

// loadSteps returns the scripted statements for reading a submission with
// the given proof rows attached.
func loadSteps(submissionID int64, proofRows [][]driver.Value) []*queryStep {
	return []*queryStep{
		{
			kind:    kindQuery,
			pattern: submissionLoadPattern,
			args:    []driver.Value{submissionID},
			columns: []string{"submission_id", "name", "submitter_token"},
			rows: [][]driver.Value{
				{submissionID, "Luna Arts", "2c6f0f3e-6c4f-4b7a-9a3d-0d9a4f5f1d20"},
			},
		},
		{
			kind:    kindQuery,
			pattern: platformJoinPattern,
			args:    []driver.Value{submissionID},
			columns: []string{"submission_id", "platform_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: proofLoadPattern,
			args:    []driver.Value{submissionID},
			columns: []string{"proof_id", "creator_submission_id", "url", "image_url"},
			rows:    proofRows,
		},
		{
			kind:    kindQuery,
			pattern: tagJoinPattern,
			args:    []driver.Value{submissionID},
			columns: []string{"submission_id", "tag_id"},
			rows:    [][]driver.Value{},
		},
	}
}

func TestPromoteOnAcceptCopiesOnlyEligibleProofs(t *testing.T) {
	// P1 is submitted, P2 was declined; only P1 may reach the catalog.
	steps := loadSteps(1, [][]driver.Value{
		{int64(101), int64(1), "https://evidence.example/a", nil},
		{int64(102), int64(1), "https://evidence.example/b", nil},
	})
	steps = append(steps,
		&queryStep{
			kind:    kindExec,
			pattern: creatorInsertPattern,
			result:  scriptedResult{lastInsertID: 10, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindExec,
			pattern: ledgerInsertPattern,
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: ledgerReadPattern,
			args:    []driver.Value{models.EntityProofSubmission, int64(101)},
			columns: []string{"entry_id", "status", "recorded_at"},
			rows:    [][]driver.Value{{int64(5), models.StatusSubmitted, time.Now()}},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: proofCountPattern,
			args:    []driver.Value{int64(10), "https://evidence.example/a", ""},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		&queryStep{
			kind:    kindExec,
			pattern: proofInsertPattern,
			result:  scriptedResult{lastInsertID: 1000, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: ledgerReadPattern,
			args:    []driver.Value{models.EntityProofSubmission, int64(102)},
			columns: []string{"entry_id", "status", "recorded_at"},
			rows:    [][]driver.Value{{int64(6), models.StatusDeclined, time.Now()}},
		},
	)

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db).WithPolicy(ReacceptDuplicate)
	creator, err := svc.PromoteOnAccept(1, 9)
	if err != nil {
		t.Fatalf("PromoteOnAccept returned error: %v", err)
	}

	if creator.CreatorID != 10 {
		t.Fatalf("expected creator id 10, got %d", creator.CreatorID)
	}
	if creator.SourceSubmissionID == nil || *creator.SourceSubmissionID != 1 {
		t.Fatalf("expected source submission 1, got %v", creator.SourceSubmissionID)
	}
	if creator.PublishedByID == nil || *creator.PublishedByID != 9 {
		t.Fatalf("expected publisher 9, got %v", creator.PublishedByID)
	}
	if creator.Name != "Luna Arts" {
		t.Fatalf("payload not copied: %q", creator.Name)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPromoteOnAcceptDeduplicatesIdenticalProofPairs(t *testing.T) {
	// Two submitted proofs with the same (url, imageUrl) pair: the dedup
	// check runs before each insert, so only one catalog proof appears.
	steps := loadSteps(2, [][]driver.Value{
		{int64(201), int64(2), "https://evidence.example/a", nil},
		{int64(202), int64(2), "https://evidence.example/a", nil},
	})
	steps = append(steps,
		&queryStep{
			kind:    kindExec,
			pattern: creatorInsertPattern,
			result:  scriptedResult{lastInsertID: 20, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindExec,
			pattern: ledgerInsertPattern,
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: ledgerReadPattern,
			args:    []driver.Value{models.EntityProofSubmission, int64(201)},
			columns: []string{"entry_id", "status", "recorded_at"},
			rows:    [][]driver.Value{{int64(5), models.StatusSubmitted, time.Now()}},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: proofCountPattern,
			args:    []driver.Value{int64(20), "https://evidence.example/a", ""},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		&queryStep{
			kind:    kindExec,
			pattern: proofInsertPattern,
			result:  scriptedResult{lastInsertID: 1001, rowsAffected: 1},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: ledgerReadPattern,
			args:    []driver.Value{models.EntityProofSubmission, int64(202)},
			columns: []string{"entry_id", "status", "recorded_at"},
			rows:    [][]driver.Value{{int64(6), models.StatusSubmitted, time.Now()}},
		},
		&queryStep{
			kind:    kindQuery,
			pattern: proofCountPattern,
			args:    []driver.Value{int64(20), "https://evidence.example/a", ""},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}},
		},
		// no second insert
	)

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db).WithPolicy(ReacceptDuplicate)
	if _, err := svc.PromoteOnAccept(2, 9); err != nil {
		t.Fatalf("PromoteOnAccept returned error: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPromoteOnAcceptRejectPolicy(t *testing.T) {
	steps := loadSteps(1, nil)
	steps = append(steps, &queryStep{
		kind:    kindQuery,
		pattern: existingLookupPattern,
		args:    []driver.Value{int64(1)},
		columns: []string{"creator_id", "name", "source_submission_id"},
		rows:    [][]driver.Value{{int64(10), "Luna Arts", int64(1)}},
	})

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db).WithPolicy(ReacceptReject)
	_, err := svc.PromoteOnAccept(1, 9)
	if !errors.Is(err, ErrAlreadyPromoted) {
		t.Fatalf("expected ErrAlreadyPromoted, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPromoteOnAcceptSkipPolicyReturnsExisting(t *testing.T) {
	steps := loadSteps(1, nil)
	steps = append(steps, &queryStep{
		kind:    kindQuery,
		pattern: existingLookupPattern,
		args:    []driver.Value{int64(1)},
		columns: []string{"creator_id", "name", "source_submission_id"},
		rows:    [][]driver.Value{{int64(10), "Luna Arts", int64(1)}},
	})

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db).WithPolicy(ReacceptSkip)
	creator, err := svc.PromoteOnAccept(1, 9)
	if err != nil {
		t.Fatalf("PromoteOnAccept returned error: %v", err)
	}
	if creator.CreatorID != 10 {
		t.Fatalf("expected existing creator 10, got %d", creator.CreatorID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCopyProofTreatsUniquenessViolationAsSkip(t *testing.T) {
	// A concurrent promotion inserted the same pair between our existence
	// check and our insert; the constraint violation means "already there".
	url := "https://evidence.example/a"
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: proofCountPattern,
			args:    []driver.Value{int64(10), url, ""},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		{
			kind:    kindExec,
			pattern: proofInsertPattern,
			err:     &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db)
	proof := &models.ProofSubmission{ProofID: 101, URL: &url}
	if err := svc.CopyProof(10, proof, 9); err != nil {
		t.Fatalf("expected duplicate key to be swallowed, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPromoteProofOnAcceptIgnoresSubmissionParented(t *testing.T) {
	// Proofs attached to a submission are copied when the submission is
	// accepted, never individually.
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: proofLoadPattern,
			args:    []driver.Value{int64(301)},
			columns: []string{"proof_id", "creator_submission_id", "creator_id"},
			rows:    [][]driver.Value{{int64(301), int64(1), nil}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewPromotionService(db)
	if err := svc.PromoteProofOnAccept(301, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProofEligibleForPromotion(t *testing.T) {
	cases := map[string]bool{
		models.StatusSubmitted:     true,
		models.StatusInReview:      true,
		models.StatusAccepted:      false,
		models.StatusDeclined:      false,
		models.StatusDeletedByUser: false,
	}
	for status, want := range cases {
		if got := ProofEligibleForPromotion(status); got != want {
			t.Fatalf("eligibility for %q: got %v want %v", status, got, want)
		}
	}
}
