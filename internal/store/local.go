// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/sizewatch/sizewatch/internal/log"
	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// LocalStore keeps the baseline snapshot in a plain file, for CI setups that
// check the baseline into the workspace instead of S3.
type LocalStore struct {
	FS   afero.Fs
	Path string
}

// NewLocal builds a LocalStore over the OS filesystem.
func NewLocal(path string) (*LocalStore, error) {
	if path == "" {
		return nil, fmt.Errorf("baseline path is required")
	}
	return &LocalStore{FS: afero.NewOsFs(), Path: path}, nil
}

// Fetch reads and decodes the baseline file. Missing or malformed files are
// logged and degrade to an empty snapshot.
func (l *LocalStore) Fetch(ctx context.Context) (snapshot.Snapshot, error) {
	data, err := afero.ReadFile(l.FS, l.Path)
	if err != nil {
		log.WithError(err).Errorf("failed to read baseline %s", l.Path)
		return snapshot.Snapshot{}, nil
	}

	snap, _ := decodeOrEmpty(data)
	return snap, nil
}

// Persist overwrites the baseline file with the encoded snapshot.
func (l *LocalStore) Persist(ctx context.Context, snap snapshot.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(l.FS, l.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", l.Path, err)
	}

	log.Debugf("baseline persisted: path=%s files=%d", l.Path, len(snap))
	return nil
}
