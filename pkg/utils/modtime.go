package utils

import (
	"os"
	"time"

	"github.com/arthur-debert/appkit/pkg/errors"
)

// ModTime returns a file's last modification time in the given
// location. A nil location means UTC.
func ModTime(path string, loc *time.Location) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, errors.Wrapf(err, errors.ErrNotFound, "%s does not exist", path)
		}
		return time.Time{}, errors.Wrapf(err, errors.ErrFileRead, "failed to stat %s", path)
	}

	if loc == nil {
		loc = time.UTC
	}
	return info.ModTime().In(loc), nil
}
