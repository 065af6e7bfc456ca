package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"campus-exchange-backend/internal/auth"
	"campus-exchange-backend/internal/config"
	"campus-exchange-backend/internal/database"
	"campus-exchange-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the YAML data files

type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Branch   string `yaml:"branch,omitempty"`
	Year     int    `yaml:"year,omitempty"`
}

type ComponentData struct {
	OwnerEmail  string `yaml:"owner_email"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
	Type        string `yaml:"type"`
}

type ProjectData struct {
	OwnerEmail  string   `yaml:"owner_email"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"tech_stack,omitempty"`
	GithubLink  string   `yaml:"github_link,omitempty"`
	ImageURL    string   `yaml:"image_url,omitempty"`
}

type SeedData struct {
	Users      []UserData      `yaml:"users"`
	Components []ComponentData `yaml:"components"`
	Projects   []ProjectData   `yaml:"projects"`
}

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 10, 2*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err = database.Initialize(dsn, nil)
		if err == nil {
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("could not connect after %d attempts: %w", maxAttempts, err)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := loadSeedFile(filepath.Join(dataDir, "seed.yaml"))
	if err != nil {
		return err
	}

	userMap := make(map[string]*models.User, len(seed.Users))
	createdUsers := 0
	for _, userData := range seed.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("creating user %s: %w", userData.Email, err)
		}
		userMap[user.Email] = user
		if created {
			createdUsers++
		}
	}
	log.Printf("Users: %d created, %d already present", createdUsers, len(seed.Users)-createdUsers)

	createdComponents := 0
	for _, componentData := range seed.Components {
		created, err := createComponent(db, componentData, userMap)
		if err != nil {
			return fmt.Errorf("creating component %q: %w", componentData.Title, err)
		}
		if created {
			createdComponents++
		}
	}
	log.Printf("Components: %d created, %d already present", createdComponents, len(seed.Components)-createdComponents)

	createdProjects := 0
	for _, projectData := range seed.Projects {
		created, err := createProject(db, projectData, userMap)
		if err != nil {
			return fmt.Errorf("creating project %q: %w", projectData.Title, err)
		}
		if created {
			createdProjects++
		}
	}
	log.Printf("Projects: %d created, %d already present", createdProjects, len(seed.Projects)-createdProjects)

	return nil
}

func loadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &seed, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var existing models.User
	if err := db.First(&existing, "email = ?", userData.Email).Error; err == nil {
		return &existing, false, nil
	}

	hash, err := auth.HashPassword(userData.Password)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		Name:     userData.Name,
		Email:    userData.Email,
		Password: hash,
		Branch:   userData.Branch,
		Year:     userData.Year,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createComponent(db *gorm.DB, componentData ComponentData, userMap map[string]*models.User) (bool, error) {
	owner, ok := userMap[componentData.OwnerEmail]
	if !ok {
		return false, fmt.Errorf("unknown owner email %s", componentData.OwnerEmail)
	}

	componentType := models.ComponentType(componentData.Type)
	if !componentType.IsValid() {
		return false, fmt.Errorf("invalid type %q", componentData.Type)
	}

	var existing models.Component
	if err := db.First(&existing, "user_id = ? AND title = ?", owner.ID, componentData.Title).Error; err == nil {
		return false, nil
	}

	component := &models.Component{
		UserID:      owner.ID,
		Title:       componentData.Title,
		Description: componentData.Description,
		Category:    componentData.Category,
		ImageURL:    componentData.ImageURL,
		Type:        componentType,
		Status:      models.ComponentStatusAvailable,
	}
	if err := db.Create(component).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createProject(db *gorm.DB, projectData ProjectData, userMap map[string]*models.User) (bool, error) {
	owner, ok := userMap[projectData.OwnerEmail]
	if !ok {
		return false, fmt.Errorf("unknown owner email %s", projectData.OwnerEmail)
	}

	var existing models.Project
	if err := db.First(&existing, "user_id = ? AND title = ?", owner.ID, projectData.Title).Error; err == nil {
		return false, nil
	}

	project := &models.Project{
		UserID:      owner.ID,
		Title:       projectData.Title,
		Description: projectData.Description,
		TechStack:   projectData.TechStack,
		GithubLink:  projectData.GithubLink,
		ImageURL:    projectData.ImageURL,
	}
	if err := db.Create(project).Error; err != nil {
		return false, err
	}
	return true, nil
}
