package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/quillandco/studyhub/internal/db"
	"github.com/quillandco/studyhub/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedAssignment struct {
	Title       string
	Description string
	DueInDays   int
	Priority    string
}

var seedAssignments = []seedAssignment{
	{
		Title:       "Research Paper on AI Ethics",
		Description: "Write a 10-page research paper exploring the ethical implications of artificial intelligence in modern society.",
		DueInDays:   7,
		Priority:    models.PriorityHigh,
	},
	{
		Title:       "Database Design Project",
		Description: "Design and implement a relational database for a school management system.",
		DueInDays:   14,
		Priority:    models.PriorityHigh,
	},
	{
		Title:       "Software Testing Lab",
		Description: "Complete unit testing exercises for the calculator application.",
		DueInDays:   3,
		Priority:    models.PriorityMedium,
	},
	{
		Title:       "Weekly Discussion Post",
		Description: "Respond to this week's discussion prompt about Agile methodologies.",
		DueInDays:   2,
		Priority:    models.PriorityMedium,
	},
	{
		Title:       "Chapter 5 Reading Assignment",
		Description: "Read Chapter 5 of Software Engineering textbook and take notes.",
		DueInDays:   5,
		Priority:    models.PriorityLow,
	},
	{
		Title:       "Practice Quiz - Data Structures",
		Description: "Complete the practice quiz on arrays, linked lists, and trees.",
		DueInDays:   4,
		Priority:    models.PriorityLow,
	},
	{
		Title:       "Team Meeting Preparation",
		Description: "Prepare presentation slides for weekly team standup meeting.",
		DueInDays:   1,
		Priority:    models.PriorityHigh,
	},
}

func main() {
	_ = godotenv.Load()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join("data", "studyhub.db")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := seedTestData(database); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("test data seeding completed")
	log.Println("login credentials: testuser / test123")
}

func seedTestData(database *gorm.DB) error {
	repos := db.NewRepositories(database)

	user, err := repos.Users.FindByUsername("testuser")
	if err != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte("test123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = models.User{
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: string(passwordHash),
			CreatedAt:    time.Now(),
		}
		if err := repos.Users.Create(&user); err != nil {
			return err
		}
		log.Println("created test user: testuser / test123")
	} else {
		log.Println("test user already exists, skipping user creation")
	}

	existing, err := repos.Assignments.ListByUser(user.ID, "all", "all")
	if err != nil {
		return err
	}
	existingTitles := make(map[string]bool, len(existing))
	for _, assignment := range existing {
		existingTitles[assignment.Title] = true
	}

	now := time.Now()
	for _, seed := range seedAssignments {
		if existingTitles[seed.Title] {
			log.Printf("skipped (already exists): %s", seed.Title)
			continue
		}
		assignment := models.Assignment{
			Title:       seed.Title,
			Description: seed.Description,
			DueDate:     now.AddDate(0, 0, seed.DueInDays),
			Priority:    seed.Priority,
			Status:      models.StatusPending,
			UserID:      user.ID,
		}
		if err := repos.Assignments.Create(&assignment); err != nil {
			return err
		}
		log.Printf("added: %s", seed.Title)
	}

	return nil
}
