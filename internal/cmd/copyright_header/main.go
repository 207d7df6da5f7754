// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// copyright_header adds the project's copyright header to Go files that lack one.
//
// Usage:
//
//	go run ./internal/cmd/copyright_header [flags] [path ...]
//
// The default path is the current directory. Hidden directories, vendor/ and _examples/-like
// directories (starting with "_") are skipped, as are generated files.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProject = flag.String("project", "GoMLX", "Project name to use in the copyright header.")
	flagDryRun  = flag.Bool("n", false, "Only list the files that would be changed.")
)

// maxHeaderLines is how far into a file an existing copyright line is searched for.
const maxHeaderLines = 50

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [flags] [path ...]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Adds a copyright header to Go files missing one.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	header := copyrightHeader(*flagProject)
	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, root := range roots {
		if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), ".go") {
				return nil
			}
			return processFile(path, header, *flagDryRun)
		}); err != nil {
			klog.Errorf("Failed walking %q: %+v", root, err)
			os.Exit(1)
		}
	}
}

func copyrightHeader(project string) string {
	return fmt.Sprintf("// Copyright 2023-2026 The %s Authors. SPDX-License-Identifier: Apache-2.0\n", project)
}

func skipDir(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor"
}

func processFile(path, header string, dryRun bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", path)
	}
	newContent, changed := addHeader(content, header)
	if !changed {
		return nil
	}
	klog.Infof("Adding header to %s", path)
	if dryRun {
		return nil
	}
	if err := os.WriteFile(path, newContent, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", path)
	}
	return nil
}

// addHeader returns content with header inserted, and whether it changed anything.
//
// Files that already have a copyright line, or that are generated, are left unchanged.
// Build constraints stay at the top of the file, followed by an empty line and the header.
func addHeader(content []byte, header string) ([]byte, bool) {
	lines := strings.Split(string(content), "\n")
	lastBuildTag := -1
	for ii, line := range lines {
		if ii >= maxHeaderLines {
			break
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "// Copyright"):
			return content, false
		case strings.HasPrefix(trimmed, "// Code generated") && strings.HasSuffix(trimmed, "DO NOT EDIT."):
			return content, false
		case strings.HasPrefix(trimmed, "//go:build"), strings.HasPrefix(trimmed, "// +build"):
			lastBuildTag = ii
		}
	}

	var buf bytes.Buffer
	if lastBuildTag >= 0 {
		buf.WriteString(strings.Join(lines[:lastBuildTag+1], "\n"))
		buf.WriteString("\n\n")
		lines = lines[lastBuildTag+1:]
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
	}
	buf.WriteString(header)
	buf.WriteString("\n")
	buf.WriteString(strings.Join(lines, "\n"))
	return buf.Bytes(), true
}
