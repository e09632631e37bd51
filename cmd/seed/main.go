package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skarchitects/internal/config"
	"skarchitects/internal/db"
	"skarchitects/internal/model"
	"skarchitects/internal/repository"
)

// sampleProjects gives a fresh install a non-empty portfolio page.
var sampleProjects = []model.Project{
	{
		Title:       "Riverside Residence",
		Category:    "Residential",
		Image:       "https://res.cloudinary.com/demo/image/upload/sk_architects_portfolio/riverside.jpg",
		Location:    "Portland, OR",
		Year:        "2023",
		Description: "A timber-frame family home stepping down to the river bank.",
		Sustainable: true,
	},
	{
		Title:       "Meridian Office Campus",
		Category:    "Commercial",
		Image:       "https://res.cloudinary.com/demo/image/upload/sk_architects_portfolio/meridian.jpg",
		Location:    "Denver, CO",
		Year:        "2022",
		Description: "Three low-rise office blocks around a shared courtyard.",
	},
	{
		Title:       "Hillcrest Community Library",
		Category:    "Public",
		Image:       "https://res.cloudinary.com/demo/image/upload/sk_architects_portfolio/hillcrest.jpg",
		Location:    "Austin, TX",
		Year:        "2024",
		Description: "Mass-timber reading halls under a single folded roof.",
		Sustainable: true,
	},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.ContactLead{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	created, err := seedProjects(ctx, gormDB, repository.NewProjectRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Sample projects created: %d", created)
}

// seedAdmin creates the initial dashboard admin from ADMIN_* environment
// variables. Idempotent: an existing user with the same email is kept.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	if existing, err := userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin %s already exists, skipping", email)
		return nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin %s created", email)
	return nil
}

// seedProjects inserts the sample portfolio, skipping titles already
// present so the script can be re-run safely.
func seedProjects(ctx context.Context, gormDB *gorm.DB, projectRepo repository.ProjectRepository) (int, error) {
	created := 0
	for i := range sampleProjects {
		project := sampleProjects[i]

		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Project{}).
			Where("title = ?", project.Title).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		if err := projectRepo.Create(ctx, &project); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
