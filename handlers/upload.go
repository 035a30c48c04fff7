package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sidomulyo/config"
	"sidomulyo/core"
	"sidomulyo/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxSuratFiles = 5

var (
	articleImageFields = []string{"img", "image", "file"}
	fotoFields         = []string{"foto"}
	pengaduanFields    = []string{"img"}

	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

func tooLarge() error {
	return core.NewBadRequestError(fmt.Sprintf("File terlalu besar. Maksimal %dMB.", config.Settings.UploadMaxBytes/(1024*1024)))
}

func isImage(fh *multipart.FileHeader) bool {
	if !imageExts[strings.ToLower(filepath.Ext(fh.Filename))] {
		return false
	}
	ct := strings.ToLower(fh.Header.Get("Content-Type"))
	return ct == "" || strings.Contains(ct, "jpeg") || strings.Contains(ct, "jpg") || strings.Contains(ct, "png")
}

// storeUpload writes fh into the upload directory as <field>-<uuid><ext>
// and returns its public path.
func storeUpload(c *gin.Context, field string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > config.Settings.UploadMaxBytes {
		return "", tooLarge()
	}
	if err := os.MkdirAll(config.Settings.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := field + "-" + uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, filepath.Join(config.Settings.UploadDir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// uploadImage stores the first image found under one of fields. It returns
// nil when the request carries no file.
func uploadImage(c *gin.Context, fields []string) (*string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		if strings.Contains(err.Error(), "too large") {
			return nil, tooLarge()
		}
		return nil, core.NewBadRequestError("Error upload file: " + err.Error())
	}

	for _, field := range fields {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}
		fh := files[0]
		if !isImage(fh) {
			return nil, core.NewBadRequestError("Hanya file gambar JPG, JPEG, atau PNG yang diperbolehkan!")
		}
		path, err := storeUpload(c, field, fh)
		if err != nil {
			return nil, err
		}
		return &path, nil
	}
	return nil, nil
}

// uploadLampiran stores up to five surat attachments from the "files" field.
func uploadLampiran(c *gin.Context) ([]models.LampiranSurat, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, core.NewBadRequestError("Error upload file: " + err.Error())
	}

	files := form.File["files"]
	if len(files) > maxSuratFiles {
		return nil, core.NewBadRequestError(fmt.Sprintf("Maksimal %d file lampiran", maxSuratFiles))
	}
	out := make([]models.LampiranSurat, 0, len(files))
	for i, fh := range files {
		path, err := storeUpload(c, "files", fh)
		if err != nil {
			return nil, err
		}
		out = append(out, models.LampiranSurat{
			NamaFile:         fh.Filename,
			URLFile:          path,
			JenisPersyaratan: strings.TrimSpace(c.PostForm(fmt.Sprintf("jenis_persyaratan_%d", i))),
		})
	}
	return out, nil
}
