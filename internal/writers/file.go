package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"seqcmp/internal/report"
)

// WriteReportFile renders r into path. The report is written to a temporary
// file next to path and renamed into place, so a failed write never leaves
// a partial report behind.
func WriteReportFile(format, path string, r report.Report, o Options) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = WriteReport(format, tmp, r, o); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
