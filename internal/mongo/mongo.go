package mongo

import (
	"context"
	"time"

	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New connects to mongo and verifies the connection with a ping.
func New(ctx context.Context, url string) (*gomongo.Client, error) {
	client, err := gomongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// Healthcheck returns a probe function for health endpoints.
func Healthcheck(client *gomongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}
