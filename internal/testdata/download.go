//go:build ignore
// +build ignore

package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"unicode"
)

// Property files which charclass is able to load as catalog classes.
var propertyFiles = map[string]bool{
	"PropList.txt":                          true,
	"Scripts.txt":                           true,
	"DerivedCoreProperties.txt":             true,
	"emoji/emoji-data.txt":                  true,
	"extracted/DerivedBinaryProperties.txt": true,
}

func main() {
	version := flag.String("version", unicode.Version, "Unicode version to download")
	dir := flag.String("dir", "ucd", "target directory")
	flag.Parse()
	url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/UCD.zip", *version)
	if err := downloadUCDZip(url, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadUCDZip(url, dir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	for _, file := range z.File {
		if file.FileInfo().IsDir() || !propertyFiles[file.Name] {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		if err := writeFile(filepath.Join(dir, filepath.Base(file.Name)), rc); err != nil {
			return fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
	}
	return nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
