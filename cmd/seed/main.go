package main

import (
	"context"
	"log"
	"time"

	"synapsex-be/internal/config"
	"synapsex-be/internal/entity"
	"synapsex-be/internal/repository/unitofwork"
	"synapsex-be/pkg/database"

	"github.com/google/uuid"
)

// Seeds a handful of demo users and stories for local development.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	now := time.Now()

	users := []*entity.User{
		{Id: uuid.New(), Username: "alice", Name: "Alice Tan", ProfileImage: "https://cdn.example.com/avatars/alice.png"},
		{Id: uuid.New(), Username: "bob", Name: "Bob Siregar", ProfileImage: "https://cdn.example.com/avatars/bob.png"},
		{Id: uuid.New(), Username: "carol", Name: "Carol Wijaya"},
	}
	for _, u := range users {
		if err := uow.UserRepository().Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Username, err)
		}
	}

	stories := []*entity.Story{
		{
			Id:        uuid.New(),
			UserId:    users[0].Id,
			MediaUrl:  "https://cdn.example.com/stories/sunset.jpg",
			Type:      entity.StoryTypeImage,
			CreatedAt: now.Add(-2 * time.Hour),
			ExpiresAt: now.Add(22 * time.Hour),
		},
		{
			Id:        uuid.New(),
			UserId:    users[1].Id,
			MediaUrl:  "https://cdn.example.com/stories/concert.mp4",
			Type:      entity.StoryTypeVideo,
			CreatedAt: now.Add(-30 * time.Minute),
			ExpiresAt: now.Add(23*time.Hour + 30*time.Minute),
		},
	}
	for _, s := range stories {
		if err := uow.StoryRepository().Create(ctx, s); err != nil {
			log.Fatalf("Failed to seed story: %v", err)
		}
	}

	if err := uow.StoryViewRepository().Upsert(ctx, &entity.StoryView{
		StoryId:  stories[0].Id,
		UserId:   users[1].Id,
		ViewedAt: now.Add(-time.Hour),
	}); err != nil {
		log.Fatalf("Failed to seed view: %v", err)
	}

	if err := uow.StoryMessageRepository().Create(ctx, &entity.StoryMessage{
		Id:        uuid.New(),
		StoryId:   stories[0].Id,
		UserId:    users[2].Id,
		Content:   "Gorgeous colors!",
		CreatedAt: now.Add(-50 * time.Minute),
	}); err != nil {
		log.Fatalf("Failed to seed message: %v", err)
	}

	log.Printf("Seed complete: %d users, %d stories", len(users), len(stories))
}
