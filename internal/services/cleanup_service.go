package services

import (
	"log"
	"time"

	"github.com/yamakawa/task-tracker-api/internal/repository"
)

// CleanupService deletes users whose last activity is older than the
// retention window, along with everything they own. A failure on one user
// is logged and the sweep moves on; there is no retry and no rollback of a
// partially deleted user.
type CleanupService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	taskRepo     repository.TaskRepository
	retention    time.Duration
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	taskRepo repository.TaskRepository,
	retention time.Duration,
) *CleanupService {
	return &CleanupService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
		retention:    retention,
	}
}

// Run performs one sweep over all inactive users.
func (s *CleanupService) Run() {
	cutoff := time.Now().Add(-s.retention)
	log.Printf("Running cleanup for users inactive since %s", cutoff.Format(time.RFC3339))

	inactiveUsers, err := s.userRepo.FindInactiveSince(cutoff)
	if err != nil {
		log.Printf("Error during inactive user cleanup: %v", err)
		return
	}

	if len(inactiveUsers) == 0 {
		log.Println("No inactive users to delete.")
		return
	}

	for _, user := range inactiveUsers {
		log.Printf("Deleting inactive user %s (ID: %d)", user.Username, user.ID)

		if err := s.taskRepo.DeleteByOwner(user.ID); err != nil {
			log.Printf("Error deleting tasks for user %d: %v", user.ID, err)
			continue
		}
		if err := s.categoryRepo.DeleteByOwner(user.ID); err != nil {
			log.Printf("Error deleting categories for user %d: %v", user.ID, err)
			continue
		}
		if err := s.userRepo.Delete(user.ID); err != nil {
			log.Printf("Error deleting user %d: %v", user.ID, err)
			continue
		}

		log.Printf("Successfully deleted user %s and their data.", user.Username)
	}
}
