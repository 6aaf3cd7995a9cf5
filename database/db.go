package database

import (
	"context"
	"log"

	"coachly/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

var client *firestore.Client

// InitDB connects to Firestore. Called once at startup; fatal on failure.
func InitDB() {
	ctx := context.Background()

	opts := []option.ClientOption{}
	if config.AppConfig.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	}

	c, err := firestore.NewClient(ctx, config.AppConfig.FirebaseProjectID, opts...)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	client = c
}

// GetClient returns the shared Firestore client.
func GetClient() *firestore.Client {
	if client == nil {
		InitDB()
	}
	return client
}

// CloseDB releases the Firestore client.
func CloseDB() {
	if client != nil {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Firestore client: %v", err)
		}
	}
}
