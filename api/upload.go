package api

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores an uploaded image under the media directory and
// returns its public URL. Filenames are replaced with a UUID so uploads
// can never collide or escape the directory.
func (ctl *Controller) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "File type not allowed"})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(ctl.UploadDir, name)); err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(fiber.Map{"url": "/media/" + name, "filename": name})
}
