package repositories

import "github.com/selim/lostfound/internal/db"

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	StudentRepository       *StudentRepository
	AdministratorRepository *AdministratorRepository
	ItemRepository          *ItemRepository
	ClaimRepository         *ClaimRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(database.Pool),
		AdministratorRepository: NewAdministratorRepository(database.Pool),
		ItemRepository:          NewItemRepository(database),
		ClaimRepository:         NewClaimRepository(database.Pool),
	}
}
