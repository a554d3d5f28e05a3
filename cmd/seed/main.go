package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/shopcore/user-orders-api/config"
	"github.com/shopcore/user-orders-api/internal/domain/entity"
	"github.com/shopcore/user-orders-api/internal/domain/repository"
	"github.com/shopcore/user-orders-api/internal/infrastructure/mongodb"
)

// Seeds a demo user through the repository so the password hash hook
// applies exactly as it does in the API path.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	repo := mongodb.NewUserRepository(db, cfg.BcryptCost)

	user := &entity.User{
		UserID:   1,
		Username: "demoUser",
		Password: "password123",
		FullName: entity.FullName{FirstName: "Demo", LastName: "User"},
		Age:      30,
		Email:    "demo@example.com",
		IsActive: true,
		Hobbies:  []string{"reading"},
		Address:  entity.Address{Street: "1 Demo St", City: "Demo City", Country: "Demoland"},
	}

	if err := repo.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			fmt.Printf("user already seeded: userId=%d username=%s\n", user.UserID, user.Username)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: userId=%d username=%s password=password123\n", user.UserID, user.Username)
}
