package store

import (
	"os"

	"acctvault/internal/fault"
	"acctvault/internal/util/fsutil"
)

// readFile reads the whole account file at path.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.WrapIO("read", path, err)
	}
	return b, nil
}

// writeFile atomically replaces the account file at path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	if err := fsutil.WriteFileAtomic(path, b, mode); err != nil {
		return fault.WrapIO("write", path, err)
	}
	return nil
}

func exists(path string) bool { return fsutil.Exists(path) }
