package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/cache"
	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/dentalogix/dentalogix-api/internal/notification"
	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"github.com/google/uuid"
)

var (
	ErrEmptySubmission    = errors.New("submission must contain at least one answered question")
	ErrSubmissionNotFound = errors.New("submission not found")
)

const (
	statsCacheKey = "quiz:stats"
	statsCacheTTL = time.Minute
)

type Service interface {
	Submit(ctx context.Context, dto SubmitQuizDTO, meta RequestMeta) (*SubmitQuizResponse, error)
	ListSubmissions(ctx context.Context, limit, offset int) (*SubmissionListDTO, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*SubmissionDetailDTO, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo       Repository
	questions  question.Service
	procedures procedure.Service
	notifier   notification.Notifier
	cache      *cache.Cache
}

func NewService(repo Repository, questions question.Service, procedures procedure.Service, notifier notification.Notifier, c *cache.Cache) Service {
	return &service{
		repo:       repo,
		questions:  questions,
		procedures: procedures,
		notifier:   notifier,
		cache:      c,
	}
}

func (s *service) Submit(ctx context.Context, dto SubmitQuizDTO, meta RequestMeta) (*SubmitQuizResponse, error) {
	log := config.WithContext(ctx)

	answers := make([]Answer, 0, len(dto.Answers))
	for _, a := range dto.Answers {
		if len(a.Selected) == 0 {
			continue
		}
		answers = append(answers, Answer{QuestionID: a.QuestionID, Selected: a.Selected})
	}
	if len(answers) == 0 {
		return nil, ErrEmptySubmission
	}

	var selectedIDs []uuid.UUID
	for _, a := range answers {
		selectedIDs = append(selectedIDs, a.Selected...)
	}

	points, err := s.questions.PointsFor(ctx, selectedIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve option points: %w", err)
	}
	for _, id := range selectedIDs {
		if _, ok := points[id]; !ok {
			log.WithField("option_id", id.String()).Warn("Skipping unresolvable option")
		}
	}

	table := Score(answers, func(optionID uuid.UUID) (map[string]int, bool) {
		pm, ok := points[optionID]
		return map[string]int(pm), ok
	})

	procs, err := s.procedures.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load procedure catalog: %w", err)
	}
	catalogOrder := make([]string, 0, len(procs))
	categories := make(map[string]string, len(procs))
	names := make(map[string]string, len(procs))
	for _, p := range procs {
		catalogOrder = append(catalogOrder, p.Key)
		categories[p.Key] = string(p.Category)
		names[p.Key] = p.Name
	}

	ranked := Rank(table, catalogOrder)
	smile := Classify(ranked, func(key string) (string, bool) {
		category, ok := categories[key]
		return category, ok
	})

	recJSON, err := json.Marshal(ranked)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}

	sub := Submission{
		ID:              uuid.New(),
		FirstName:       dto.FirstName,
		Email:           dto.Email,
		Phone:           dto.Phone,
		SmileType:       smile.Code,
		SmileTypeName:   smile.Name,
		Recommendations: recJSON,
		Timeline:        string(dto.Timeline),
		PrimaryInterest: string(dto.PrimaryInterest),
		Source:          dto.Source,
		UTMSource:       dto.UTMSource,
		UTMMedium:       dto.UTMMedium,
		UTMCampaign:     dto.UTMCampaign,
		IPAddress:       meta.IPAddress,
		UserAgent:       meta.UserAgent,
	}

	rows := make([]*SubmissionAnswer, 0, len(answers))
	for _, a := range answers {
		selected, err := json.Marshal(a.Selected)
		if err != nil {
			return nil, fmt.Errorf("encode selected options: %w", err)
		}
		rows = append(rows, &SubmissionAnswer{
			ID:              uuid.New(),
			QuestionID:      a.QuestionID,
			SelectedOptions: selected,
		})
	}

	if err := s.repo.Record(&sub, rows); err != nil {
		log.WithError(err).Error("Failed to record submission")
		return nil, fmt.Errorf("record submission: %w", err)
	}

	s.cache.Delete(ctx, statsCacheKey)

	log.WithFields(map[string]interface{}{
		"submission_id": sub.ID.String(),
		"smile_type":    smile.Code,
	}).Info("Quiz submission recorded")

	// Notification is fire-and-forget: the submission is already durable and
	// acknowledged; a send failure only shows up in the logs.
	recNames := make([]string, 0, len(ranked))
	for _, rec := range ranked {
		if name, ok := names[rec.Key]; ok {
			recNames = append(recNames, name)
		} else {
			recNames = append(recNames, rec.Key)
		}
	}
	go s.notify(sub.ID, notification.QuizLead{
		FirstName:       sub.FirstName,
		Email:           sub.Email,
		Phone:           sub.Phone,
		SmileType:       sub.SmileType,
		SmileTypeName:   sub.SmileTypeName,
		PrimaryInterest: sub.PrimaryInterest,
		Timeline:        sub.Timeline,
		Recommendations: recNames,
	})

	return &SubmitQuizResponse{
		SubmissionID:    sub.ID,
		SmileType:       smile.Code,
		SmileTypeName:   smile.Name,
		Recommendations: ranked,
	}, nil
}

func (s *service) notify(submissionID uuid.UUID, lead notification.QuizLead) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	log := config.WithContext(ctx).WithField("submission_id", submissionID.String())

	if err := s.notifier.NotifyQuizLead(ctx, lead); err != nil {
		if errors.Is(err, notification.ErrNotConfigured) {
			return
		}
		log.WithError(err).Warn("Quiz lead notification failed")
		return
	}

	if err := s.repo.MarkNotified(submissionID); err != nil {
		log.WithError(err).Warn("Failed to mark submission as notified")
	}
}

func (s *service) ListSubmissions(ctx context.Context, limit, offset int) (*SubmissionListDTO, error) {
	log := config.WithContext(ctx)

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	subs, err := s.repo.List(limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions")
		return nil, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	return &SubmissionListDTO{Submissions: subs, Total: total}, nil
}

func (s *service) GetSubmission(ctx context.Context, id uuid.UUID) (*SubmissionDetailDTO, error) {
	log := config.WithContext(ctx)

	sub, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to get submission")
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	answers, err := s.repo.ListAnswers(id)
	if err != nil {
		log.WithError(err).Error("Failed to list submission answers")
		return nil, err
	}

	return &SubmissionDetailDTO{Submission: sub, Answers: answers}, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var cached Stats
	if s.cache.Get(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	subs, err := s.repo.ListAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load submissions for stats")
		return nil, err
	}

	stats := Aggregate(subs, time.Now())
	s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL)
	return &stats, nil
}
