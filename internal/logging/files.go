package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// LogFilePath names the log file for a program run started at start,
// e.g. carrierlogs/carrierctl.20240115_103000.log.
func LogFilePath(logsDir, programName string, start time.Time) string {
	return filepath.Join(logsDir, fmt.Sprintf("%s.%s.log", programName, start.Format("20060102_150405")))
}

// OpenLogFile creates the logs directory if needed and opens path for
// appending. An existing file at path is first moved aside to path+".old".
func OpenLogFile(fs afero.Fs, path string) (afero.File, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating logs dir: %w", err)
	}
	if _, err := fs.Stat(path); err == nil {
		if err := fs.Rename(path, path+".old"); err != nil {
			return nil, fmt.Errorf("rotating log file: %w", err)
		}
	}
	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
