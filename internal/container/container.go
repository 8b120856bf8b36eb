package container

import (
	"context"
	"log"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/dentalogix/dentalogix-api/internal/cache"
	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/dentalogix/dentalogix-api/internal/contact"
	"github.com/dentalogix/dentalogix-api/internal/notification"
	"github.com/dentalogix/dentalogix-api/internal/offer"
	"github.com/dentalogix/dentalogix-api/internal/post"
	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"github.com/dentalogix/dentalogix-api/internal/quiz"
	"github.com/dentalogix/dentalogix-api/internal/settings"
	"github.com/dentalogix/dentalogix-api/internal/team"
	"github.com/dentalogix/dentalogix-api/internal/testimonial"
)

type Container struct {
	Config               *config.Config
	ProcedureContainer   *procedure.ProcedureContainer
	QuestionContainer    *question.QuestionContainer
	QuizContainer        *quiz.QuizContainer
	ContactContainer     *contact.ContactContainer
	PostContainer        *post.PostContainer
	OfferContainer       *offer.OfferContainer
	SettingsContainer    *settings.SettingsContainer
	TeamContainer        *team.TeamContainer
	TestimonialContainer *testimonial.TestimonialContainer
}

func New() *Container {
	config.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	auth.Init(cfg.JWTSecret)
	if cfg.CryptoKey != "" {
		config.InitCrypto(cfg.CryptoKey)
	}

	ctx := context.Background()
	if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&procedure.Procedure{},
		&question.Question{},
		&question.Option{},
		&quiz.Submission{},
		&quiz.SubmissionAnswer{},
		&contact.Message{},
		&post.Post{},
		&offer.Offer{},
		&settings.Setting{},
		&team.Member{},
		&testimonial.Testimonial{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPass)

	procedureContainer := procedure.NewProcedureContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB, redisCache)
	settingsContainer := settings.NewSettingsContainer(config.DB)

	if err := procedure.Seed(ctx, procedureContainer.Repo); err != nil {
		log.Fatalf("failed to seed procedures: %v", err)
	}
	if err := question.Seed(ctx, questionContainer.Repo); err != nil {
		log.Fatalf("failed to seed questions: %v", err)
	}

	notifier := notification.NewSMTPNotifier(settingsContainer.Service)

	quizContainer := quiz.NewQuizContainer(
		config.DB,
		questionContainer.Service,
		procedureContainer.Service,
		notifier,
		redisCache,
	)
	contactContainer := contact.NewContactContainer(config.DB, notifier)
	postContainer := post.NewPostContainer(config.DB)
	offerContainer := offer.NewOfferContainer(config.DB)
	teamContainer := team.NewTeamContainer(config.DB)
	testimonialContainer := testimonial.NewTestimonialContainer(config.DB)

	return &Container{
		Config:               cfg,
		ProcedureContainer:   procedureContainer,
		QuestionContainer:    questionContainer,
		QuizContainer:        quizContainer,
		ContactContainer:     contactContainer,
		PostContainer:        postContainer,
		OfferContainer:       offerContainer,
		SettingsContainer:    settingsContainer,
		TeamContainer:        teamContainer,
		TestimonialContainer: testimonialContainer,
	}
}
