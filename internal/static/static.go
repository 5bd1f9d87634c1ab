// Package static embeds static files into the binary and copies them to the
// user's data directory
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/internal/pathutil"
)

const (
	filesDir = "files"

	// IconFile is the notification icon, relative to the data directory.
	IconFile = "static/icon.svg"

	filePermission = 0o644
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into the data directory. Files that
// already exist are left untouched.
func Install() error {
	return install(func(rel string) (string, error) {
		return xdg.DataFile(filepath.Join(pathutil.Dir(), rel))
	})
}

func install(resolve func(rel string) (string, error)) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath, err := resolve(filepath.Join("static", stripped))
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
			if err != nil {
				return err
			}

			return os.WriteFile(destPath, b, filePermission)
		},
	)
}
