package lyricsite

import (
	"io"
	"net/http"
)

// ReadFile reads the whole file at path in fs.
func ReadFile(fs http.FileSystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
