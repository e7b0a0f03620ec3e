// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package store loads and saves recommendation datasets as JSON
// snapshots on disk.
package store

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/recommend"
)

// LoadSnapshot reads a dataset snapshot from path.
func LoadSnapshot(path string) (recommend.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return recommend.Dataset{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// ReadSnapshot decodes a dataset from r and sanity-checks it.
func ReadSnapshot(r io.Reader) (recommend.Dataset, error) {
	var ds recommend.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return recommend.Dataset{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := validate(ds); err != nil {
		return recommend.Dataset{}, err
	}
	return ds, nil
}

// SaveSnapshot writes ds to path atomically via a temp file rename.
func SaveSnapshot(path string, ds recommend.Dataset) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

func validate(ds recommend.Dataset) error {
	if len(ds.Restaurants) == 0 {
		return fmt.Errorf("snapshot has no restaurants")
	}

	restaurants := make(map[string]struct{}, len(ds.Restaurants))
	for i, rest := range ds.Restaurants {
		if rest.ID == "" {
			return fmt.Errorf("restaurant %d: missing id", i)
		}
		if _, dup := restaurants[rest.ID]; dup {
			return fmt.Errorf("restaurant %q: duplicate id", rest.ID)
		}
		restaurants[rest.ID] = struct{}{}
	}

	users := make(map[string]struct{}, len(ds.Users))
	for i, u := range ds.Users {
		if u.ID == "" {
			return fmt.Errorf("user %d: missing id", i)
		}
		if _, dup := users[u.ID]; dup {
			return fmt.Errorf("user %q: duplicate id", u.ID)
		}
		users[u.ID] = struct{}{}
	}

	for i, in := range ds.Interactions {
		if in.UserID == "" || in.RestaurantID == "" {
			return fmt.Errorf("interaction %d: missing user or restaurant id", i)
		}
		if _, ok := restaurants[in.RestaurantID]; !ok {
			return fmt.Errorf("interaction %d: unknown restaurant %q", i, in.RestaurantID)
		}
	}
	return nil
}
