package services

import (
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/codegen"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/storage"
)

const imageExt = ".jpg"

// ImageService owns image rows and their backing files. It is driven by the
// product service; the only direct route is the public file read.
type ImageService struct {
	access
	store storage.Store
}

func NewImageService(acc access, store storage.Store) *ImageService {
	return &ImageService{access: acc, store: store}
}

// saveFiles writes every upload to the store under a freshly generated file
// name and returns the names. On any failure the files written so far are
// unlinked before returning.
func (s *ImageService) saveFiles(files [][]byte) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, data := range files {
		name, err := s.generateName()
		if err != nil {
			s.unlinkFiles(names)
			return nil, err
		}
		if err := s.store.Save(name, data); err != nil {
			s.unlinkFiles(names)
			return nil, httperr.Storage(err)
		}
		names = append(names, name)
	}
	return names, nil
}

// generateName draws a candidate file name checked against both the images
// table and the store, so a crash between file write and row insert cannot
// seed a future collision.
func (s *ImageService) generateName() (string, error) {
	code, err := codegen.Generate(codegen.FileName, func(candidate string) (bool, error) {
		name := candidate + imageExt
		var count int64
		if err := s.db.Model(&models.Image{}).Where("file_name = ?", name).Count(&count).Error; err != nil {
			return false, httperr.Storage(err)
		}
		return count > 0 || s.store.Exists(name), nil
	})
	if err != nil {
		return "", err
	}
	return code + imageExt, nil
}

// createRows inserts one image row per file name inside tx.
func (s *ImageService) createRows(tx *gorm.DB, productID string, names []string) ([]models.Image, error) {
	images := make([]models.Image, 0, len(names))
	for _, name := range names {
		img := models.Image{ID: uuid.NewString(), FileName: name, ProductID: productID}
		if err := tx.Create(&img).Error; err != nil {
			return nil, translateWrite(err, "file_name", "Product")
		}
		images = append(images, img)
	}
	return images, nil
}

// removeTx deletes the image row inside tx and records its file name so the
// caller can unlink the file after commit.
func (s *ImageService) removeTx(tx *gorm.DB, id string, rm *removed) error {
	var img models.Image
	if err := tx.Where("id = ?", id).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.EntityNotFound("Image")
		}
		return httperr.Storage(err)
	}
	if err := tx.Where("id = ?", id).Delete(&models.Image{}).Error; err != nil {
		return httperr.Storage(err)
	}
	rm.files = append(rm.files, img.FileName)
	return nil
}

// unlinkFiles removes backing files best-effort. Failures are logged, not
// returned: the rows are already gone and the operation must not fail now.
func (s *ImageService) unlinkFiles(names []string) {
	for _, name := range names {
		if err := s.store.Remove(name); err != nil {
			s.log.Errorw("image file removal failed", "file", name, "error", err)
		}
	}
}

// FilePath resolves a public image request to a file on disk. Names carrying
// path separators are rejected before the store is consulted.
func (s *ImageService) FilePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", httperr.EntityNotFound("Image")
	}
	if !s.store.Exists(name) {
		return "", httperr.EntityNotFound("Image")
	}
	return s.store.Path(name), nil
}
