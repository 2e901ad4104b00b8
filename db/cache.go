// Copyright 2017 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2017 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package db caches remote model downloads in a local sqlite file, so
// repeated `segment --cache-db` and `run` (cacheDb) invocations
// against the same model URI don't refetch it every time.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/fs"
)

// Cache is a sqlite-backed key/value store, keyed by the source URI a
// model was fetched from.
type Cache struct {
	database *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	existed := fs.IsFile(path)
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model cache %s: %w", path, err)
	}
	if !existed {
		log.Info().Str("path", path).Msg("creating new model cache database")
	}
	if _, err := database.Exec(
		`CREATE TABLE IF NOT EXISTS model_cache (
			uri TEXT PRIMARY KEY,
			content BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		)`); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize model cache schema: %w", err)
	}
	for _, pragma := range []string{"PRAGMA synchronous = OFF", "PRAGMA journal_mode = MEMORY"} {
		if _, err := database.Exec(pragma); err != nil {
			log.Warn().Err(err).Str("pragma", pragma).Msg("failed to apply cache pragma")
		}
	}
	return &Cache{database: database}, nil
}

// Get returns the cached bytes for uri, if present.
func (c *Cache) Get(uri string) ([]byte, bool, error) {
	var content []byte
	err := c.database.QueryRow(
		"SELECT content FROM model_cache WHERE uri = ?", uri).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read model cache: %w", err)
	}
	return content, true, nil
}

// Put stores content under uri, replacing any previous entry.
func (c *Cache) Put(uri string, content []byte) error {
	_, err := c.database.Exec(
		"INSERT OR REPLACE INTO model_cache (uri, content, fetched_at) VALUES (?, ?, ?)",
		uri, content, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write model cache: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.database.Close()
}
