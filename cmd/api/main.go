package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/dentalogix/dentalogix-api/internal/container"
	"github.com/dentalogix/dentalogix-api/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		AllowedOrigin:      c.Config.AllowedOrigin,
		ProcedureHandler:   c.ProcedureContainer.Handler,
		QuestionHandler:    c.QuestionContainer.Handler,
		QuizHandler:        c.QuizContainer.Handler,
		ContactHandler:     c.ContactContainer.Handler,
		PostHandler:        c.PostContainer.Handler,
		OfferHandler:       c.OfferContainer.Handler,
		SettingsHandler:    c.SettingsContainer.Handler,
		TeamHandler:        c.TeamContainer.Handler,
		TestimonialHandler: c.TestimonialContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	addr := ":" + c.Config.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
