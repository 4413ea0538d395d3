// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dbFileName    = "app.db"
	dataDir       = "/data"
	tmpDBFileName = "idea-backlog-app.db"
	dbDirFileMode = 0o755
)

// ResolveDBPath picks the SQLite file location.
//
// An explicit envPath always wins and its parent directory is created. Without
// it the first candidate whose directory can be created is used: /data/app.db,
// then app.db in the working directory, finally a file in os.TempDir().
func ResolveDBPath(envPath string) (string, error) {
	candidates := []string{filepath.Join(dataDir, dbFileName)}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, dbFileName))
	}

	return resolveDBPath(envPath, candidates, os.TempDir())
}

func resolveDBPath(envPath string, candidates []string, tmpDir string) (string, error) {
	if envPath != "" {
		if err := ensureParentDir(envPath); err != nil {
			return "", fmt.Errorf("%w: %w", ErrPreparingDBPath, err)
		}
		return envPath, nil
	}

	for _, candidate := range candidates {
		if err := ensureParentDir(candidate); err != nil {
			continue
		}
		return candidate, nil
	}

	tmp := filepath.Join(tmpDir, tmpDBFileName)
	if err := ensureParentDir(tmp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreparingDBPath, err)
	}

	return tmp, nil
}

func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), dbDirFileMode)
}
