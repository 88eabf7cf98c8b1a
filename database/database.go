package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	blogRepo    *BlogRepo
	cvRepo      *CVRepo
	messageRepo *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		blogRepo:    NewBlogRepo(db),
		cvRepo:      NewCVRepo(db),
		messageRepo: NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CVRepo() *CVRepo {
	return d.cvRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}
