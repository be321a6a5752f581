package storage

import (
	"os"
	"path"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"

	"github.com/formbridge/formbridge/internal/models"
)

type DataBase struct {
	db *gorm.DB
}

func NewDataBase(dbpath string) (*DataBase, error) {
	if !path.IsAbs(dbpath) {
		dbpath = path.Join(os.Getenv("PWD"), dbpath)
	}
	if err := os.MkdirAll(path.Dir(dbpath), 0o755); err != nil {
		return nil, err
	}
	db, err := gorm.Open("sqlite3", dbpath)
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.Submission{})
	// created_at is the sole sort key for the admin listing.
	db.Model(&models.Submission{}).AddIndex("idx_submissions_created_at", "created_at")
	return &DataBase{db: db}, nil
}

func (d *DataBase) Close() error {
	return d.db.Close()
}

func (d *DataBase) CreateSubmission(sub *models.Submission) error {
	return d.db.Create(sub).Error
}

func (d *DataBase) ListSubmissions() ([]models.Submission, error) {
	subs := []models.Submission{}
	err := d.db.Order("created_at desc").Find(&subs).Error
	return subs, err
}
