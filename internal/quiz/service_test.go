package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/notification"
	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"github.com/dentalogix/dentalogix-api/internal/quiz"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recorderSpy struct {
	quiz.Repository
	recorded bool
}

func (r *recorderSpy) Record(sub *quiz.Submission, answers []*quiz.SubmissionAnswer) error {
	r.recorded = true
	return nil
}

type stubNotifier struct {
	err   error
	leads chan notification.QuizLead
}

func (n *stubNotifier) NotifyQuizLead(ctx context.Context, lead notification.QuizLead) error {
	if n.leads != nil {
		n.leads <- lead
	}
	return n.err
}

func (n *stubNotifier) NotifyContactMessage(ctx context.Context, msg notification.ContactMessage) error {
	return n.err
}

func TestSubmitRejectsEmptySubmissions(t *testing.T) {
	spy := &recorderSpy{}
	svc := quiz.NewService(spy, nil, nil, nil, nil)

	cases := []struct {
		name string
		dto  quiz.SubmitQuizDTO
	}{
		{"NoAnswers", quiz.SubmitQuizDTO{FirstName: "Maya"}},
		{"OnlyEmptySelections", quiz.SubmitQuizDTO{
			FirstName: "Maya",
			Answers: []quiz.AnswerDTO{
				{QuestionID: uuid.New()},
				{QuestionID: uuid.New(), Selected: quiz.UUIDList{}},
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.dto, quiz.RequestMeta{})
			if !errors.Is(err, quiz.ErrEmptySubmission) {
				t.Fatalf("want ErrEmptySubmission, got %v", err)
			}
			if spy.recorded {
				t.Error("nothing should be recorded for an empty submission")
			}
		})
	}
}

// seedCatalog installs a small procedure catalog and two questions so Submit
// can run end to end against a real database.
func seedCatalog(t *testing.T, db *gorm.DB) (optA, optC, optD uuid.UUID) {
	t.Helper()

	procs := []procedure.Procedure{
		{ID: uuid.New(), Key: "whitening", Name: "Professional Teeth Whitening", Category: procedure.CategoryCosmetic, SortOrder: 0, IsActive: true},
		{ID: uuid.New(), Key: "invisalign", Name: "Invisalign Clear Aligners", Category: procedure.CategoryOrthodontic, SortOrder: 1, IsActive: true},
		{ID: uuid.New(), Key: "preventive", Name: "Preventive Care Plan", Category: procedure.CategoryPreventive, SortOrder: 2, IsActive: true},
	}
	for i := range procs {
		if err := db.Create(&procs[i]).Error; err != nil {
			t.Fatalf("seed procedure: %v", err)
		}
	}

	optA, optC, optD = uuid.New(), uuid.New(), uuid.New()
	questions := []question.Question{
		{
			ID: uuid.New(), Prompt: "What bothers you most about your smile?", Category: "concerns", IsActive: true, SortOrder: 0,
			Options: []question.Option{
				{ID: optA, Label: "Stains or discoloration", Points: question.PointMap{"whitening": 3}},
			},
		},
		{
			ID: uuid.New(), Prompt: "What are your smile goals?", Category: "goals", IsMultiSelect: true, IsActive: true, SortOrder: 1,
			Options: []question.Option{
				{ID: optC, Label: "A brighter smile", Points: question.PointMap{"whitening": 1}},
				{ID: optD, Label: "Keeping things healthy", Points: question.PointMap{"preventive": 2}},
			},
		},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
	return optA, optC, optD
}

func newQuizService(db *gorm.DB, notifier notification.Notifier) (quiz.Service, quiz.Repository) {
	repo := quiz.NewRepository(db)
	questions := question.NewService(question.NewRepository(db), nil)
	procedures := procedure.NewService(procedure.NewRepository(db))
	return quiz.NewService(repo, questions, procedures, notifier, nil), repo
}

func TestSubmitEndToEnd(t *testing.T) {
	db := newTestDB(t)
	optA, optC, optD := seedCatalog(t, db)
	svc, repo := newQuizService(db, &stubNotifier{err: notification.ErrNotConfigured})

	dto := quiz.SubmitQuizDTO{
		FirstName:       "Maya",
		Email:           "maya@example.com",
		Timeline:        "ASAP",
		PrimaryInterest: "whitening",
		Answers: []quiz.AnswerDTO{
			{QuestionID: uuid.New(), Selected: quiz.UUIDList{optA}},
			{QuestionID: uuid.New(), Selected: quiz.UUIDList{optC, optD}},
		},
	}

	resp, err := svc.Submit(context.Background(), dto, quiz.RequestMeta{IPAddress: "203.0.113.7", UserAgent: "test"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if resp.SmileType != "glow_seeker" || resp.SmileTypeName != "The Glow Seeker" {
		t.Errorf("wrong smile type: %s (%s)", resp.SmileType, resp.SmileTypeName)
	}

	want := []quiz.Recommendation{
		{Key: "whitening", Score: 4},
		{Key: "preventive", Score: 2},
	}
	if len(resp.Recommendations) != len(want) {
		t.Fatalf("recommendations = %v, want %v", resp.Recommendations, want)
	}
	for i := range want {
		if resp.Recommendations[i] != want[i] {
			t.Errorf("recommendation[%d] = %v, want %v", i, resp.Recommendations[i], want[i])
		}
	}

	found, err := repo.FindByID(resp.SubmissionID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found == nil {
		t.Fatal("submission not persisted")
	}
	if found.IPAddress != "203.0.113.7" {
		t.Errorf("request meta not persisted: %q", found.IPAddress)
	}

	answers, err := repo.ListAnswers(resp.SubmissionID)
	if err != nil {
		t.Fatalf("ListAnswers failed: %v", err)
	}
	if len(answers) != 2 {
		t.Errorf("want 2 persisted answers, got %d", len(answers))
	}
}

func TestSubmitSkipsUnresolvableOptions(t *testing.T) {
	db := newTestDB(t)
	optA, _, _ := seedCatalog(t, db)
	svc, _ := newQuizService(db, &stubNotifier{err: notification.ErrNotConfigured})

	dto := quiz.SubmitQuizDTO{
		FirstName: "Maya",
		Answers: []quiz.AnswerDTO{
			{QuestionID: uuid.New(), Selected: quiz.UUIDList{optA, uuid.New()}},
		},
	}

	resp, err := svc.Submit(context.Background(), dto, quiz.RequestMeta{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0] != (quiz.Recommendation{Key: "whitening", Score: 3}) {
		t.Errorf("recommendations = %v, want whitening:3 only", resp.Recommendations)
	}
}

func TestSubmitMarksNotified(t *testing.T) {
	db := newTestDB(t)
	optA, _, _ := seedCatalog(t, db)

	notifier := &stubNotifier{leads: make(chan notification.QuizLead, 1)}
	svc, repo := newQuizService(db, notifier)

	dto := quiz.SubmitQuizDTO{
		FirstName: "Maya",
		Email:     "maya@example.com",
		Answers: []quiz.AnswerDTO{
			{QuestionID: uuid.New(), Selected: quiz.UUIDList{optA}},
		},
	}

	resp, err := svc.Submit(context.Background(), dto, quiz.RequestMeta{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	select {
	case lead := <-notifier.leads:
		if lead.FirstName != "Maya" {
			t.Errorf("wrong lead name: %s", lead.FirstName)
		}
		if len(lead.Recommendations) == 0 || lead.Recommendations[0] != "Professional Teeth Whitening" {
			t.Errorf("lead should carry display names, got %v", lead.Recommendations)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		found, err := repo.FindByID(resp.SubmissionID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.NotificationSent {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("submission never marked as notified")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStatsUsesAllSubmissions(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newQuizService(db, &stubNotifier{err: notification.ErrNotConfigured})

	now := time.Now()
	for i, email := range []string{"a@example.com", ""} {
		sub := newSubmission(now.Add(time.Duration(-i) * time.Hour))
		sub.ID = uuid.New()
		sub.Email = email
		if err := db.Create(sub).Error; err != nil {
			t.Fatalf("create submission: %v", err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalSubmissions != 2 {
		t.Errorf("TotalSubmissions = %d, want 2", stats.TotalSubmissions)
	}
	if stats.SubmissionsWithEmail != 1 || stats.ConversionRate != 50 {
		t.Errorf("conversion = %d/%d%%, want 1/50%%", stats.SubmissionsWithEmail, stats.ConversionRate)
	}
}
