package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// ApplicationKey returns a fresh object key for an application attachment:
// applications/{careerID}/{uuid}{ext}.
func ApplicationKey(careerID, ext string) string {
	careerID = strings.Trim(strings.TrimSpace(careerID), "/")
	if careerID == "" {
		careerID = "unknown"
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return path.Join("applications", careerID, uuid.NewString()+ext)
}
