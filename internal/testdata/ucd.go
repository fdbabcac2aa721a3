// Package testdata serves Unicode Character Database files to tests.
//
// A small excerpt of PropList.txt is compiled in. Complete UCD files may be
// fetched into directory ucd/ with
//
//	go run download.go
//
// and take precedence over the compiled-in files.
package testdata

import (
	"bytes"
	"embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

//go:embed ucd/*.txt
var builtin embed.FS

// UCDReader returns reader for the given ucd file for testing.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		if data, err = builtin.ReadFile("ucd/" + file); err != nil {
			return nil, err
		}
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "ucd", file)
}
