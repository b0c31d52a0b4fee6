// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// FormatVersion is written into newly persisted snapshot documents.
const FormatVersion = 1

// wrapperKey nests the snapshot inside current-format documents. Documents
// without it are the legacy format, where the whole object is the snapshot.
const wrapperKey = "bundle"

// document is the wrapped on-disk/remote form of a snapshot.
type document struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Bundle      Snapshot  `json:"bundle"`
}

// Decode parses a stored snapshot document, accepting both the legacy bare
// form and the wrapped form. Shape detection happens exactly once, here;
// callers only ever see the canonical Snapshot.
func Decode(data []byte) (Snapshot, error) {
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("snapshot document is not a JSON object")
	}

	body := doc
	// A legacy snapshot may itself contain a file literally named "bundle";
	// only an object-valued wrapper key selects the wrapped form.
	if wrapped := doc.Get(wrapperKey); wrapped.IsObject() {
		body = wrapped
	}

	snap := Snapshot{}
	var err error
	body.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("size for %q is not a number", key.String())
			return false
		}
		size := value.Int()
		if size < 0 {
			err = fmt.Errorf("size for %q is negative: %d", key.String(), size)
			return false
		}
		snap[key.String()] = size
		return true
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Encode serializes snap in the wrapped document form.
func Encode(snap Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(document{
		Version:     FormatVersion,
		GeneratedAt: time.Now().UTC(),
		Bundle:      snap,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return out, nil
}
