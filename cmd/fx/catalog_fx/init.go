package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ruralplanner/internal/repositories"
)

var Module = fx.Provide(
	provideJobRepo,
	provideTourRepo,
	provideUserRepo,
)

func provideJobRepo(db *gorm.DB) repositories.JobRepository {
	return repositories.NewJobRepository(db)
}

func provideTourRepo(db *gorm.DB) repositories.TourRepository {
	return repositories.NewTourRepository(db)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}
