package database

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	draftRepo   *DraftRepo
}

// New initializes a Database with each repository on its backing store:
// projects on the shared GORM instance, drafts on redis.
func New(db *gorm.DB, redisClient *redis.Client) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		draftRepo:   NewDraftRepo(redisClient),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) DraftRepo() *DraftRepo {
	return d.draftRepo
}
