package file

import (
	"os"
	"path/filepath"
)

type FileRepository struct{}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

func (r *FileRepository) Getwd() (string, error) {
	return os.Getwd()
}

func (r *FileRepository) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *FileRepository) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (r *FileRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func (r *FileRepository) MkdirAll(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}
