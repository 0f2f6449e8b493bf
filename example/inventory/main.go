package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mnehpets/gravityzone"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Reads GRAVITYZONE_ACCESS_URL and GRAVITYZONE_API_KEY, optionally
	// from a .env file.
	client, err := gravityzone.NewFromEnv(gravityzone.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Walk every managed endpoint. The iterator fetches pages lazily, so
	// breaking out early stops the requests too.
	count := 0
	for item, err := range client.GetEndpoints(ctx, "") {
		if err != nil {
			log.Fatalf("list endpoints: %v", err)
		}
		count++
		fmt.Printf("%v\t%v\n", item["id"], item["name"])
	}
	fmt.Printf("%d managed endpoints\n", count)

	// The same walk, decoded into a typed struct per item.
	type endpoint struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		IsManaged bool   `json:"isManaged"`
	}
	for ep, err := range gravityzone.DecodeSeq[endpoint](client.GetEndpoints(ctx, "")) {
		if err != nil {
			log.Fatalf("list endpoints: %v", err)
		}
		if !ep.IsManaged {
			fmt.Printf("unmanaged: %s (%s)\n", ep.Name, ep.ID)
		}
	}
}
