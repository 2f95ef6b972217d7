package renamer

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errTargetExists is returned by copyFile when dst is already present. An
// existing target is never overwritten.
var errTargetExists = errors.New("target file already exists")

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if errors.Is(err, os.ErrExist) {
		return errTargetExists
	}
	if err != nil {
		return fmt.Errorf("creating target: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing target: %w", cerr)
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying: %w", err)
	}
	// Keep the original modification time so the copies sort like the
	// sources do.
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("setting times: %w", err)
	}
	return nil
}
