package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mnehpets/gravityzone"
	"github.com/mnehpets/gravityzone/webhook"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	authorization := os.Getenv("PUSH_AUTHORIZATION")
	publicURL := os.Getenv("PUSH_URL")
	if authorization == "" || publicURL == "" {
		log.Fatal("PUSH_AUTHORIZATION and PUSH_URL must be set")
	}

	// Point the console's event push service at this process. The console
	// sends the authorization value back with every delivery.
	client, err := gravityzone.NewFromEnv(gravityzone.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = client.SetPushEventSettings(ctx, gravityzone.PushSettings{
		URL:           publicURL,
		Authorization: authorization,
		EventTypes:    []string{"av", "fw", "task-status"},
	})
	cancel()
	if err != nil {
		log.Fatalf("configure push events: %v", err)
	}

	handler, err := webhook.New(authorization, func(ctx context.Context, e webhook.Event) error {
		logger.Info("push event",
			zap.String("module", e.Module),
			zap.Any("fields", e.Raw),
		)
		return nil
	}, webhook.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/events", handler)
	log.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
