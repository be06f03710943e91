package main

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/astutil"
)

var (
	// errUsageFound indicates presence of some object
	errUsageFound = errors.New("usage found")
	// errUsageNotFound indicates absence of some object
	errUsageNotFound = errors.New("usage not found")
)

// usesKnownPackage checks if any file in given rootdir uses at least one of given knownPackages
func usesKnownPackage(t *testing.T, rootdir string, knownPackages []string) error {
	err := filepath.WalkDir(rootdir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// skip vendor directory and reference material
			if d.Name() == "vendor" || d.Name() == ".git" || d.Name() == "testdata" || strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			// dive into regular directory
			return nil
		}

		// skip test files or non-Go files
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}

		importPath, err := importsKnownPackage(t, path, knownPackages)
		if err != nil {
			return fmt.Errorf("невозможно проинспектировать файл %s: %w", path, err)
		}
		if importPath != "" {
			return fmt.Errorf("%s: %w", importPath, errUsageFound)
		}

		return nil
	})
	if err != nil {
		return err
	}
	return errUsageNotFound
}

// importsKnownPackage returns import path of the first known package imported by given file
func importsKnownPackage(t *testing.T, filepath string, knownPackages []string) (string, error) {
	t.Helper()

	fset := token.NewFileSet()
	sf, err := parser.ParseFile(fset, filepath, nil, parser.ImportsOnly)
	if err != nil {
		return "", fmt.Errorf("невозможно распарсить файл: %w", err)
	}

	for _, paragraph := range astutil.Imports(fset, sf) {
		for _, importSpec := range paragraph {
			if importSpec.Name.String() == "_" {
				continue
			}
			path, err := strconv.Unquote(importSpec.Path.Value)
			if err != nil {
				return "", err
			}
			for _, knownImport := range knownPackages {
				if path == knownImport || strings.HasPrefix(path, knownImport+"/") {
					return path, nil
				}
			}
		}
	}

	return "", nil
}
