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

// Package cnf loads the JSON configuration for the cjkseg CLI driver.
// The learner packages themselves take plain arguments; this struct
// only carries what the command-line surface needs to assemble them.
package cnf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/czcorpus/cjkseg/cjkerr"
	"github.com/czcorpus/cjkseg/fs"
)

// Conf holds a single extract/train/segment run's parameters.
type Conf struct {
	Language string `json:"language"`

	// Threshold stops training early once the best weak hypothesis's
	// weighted error rate is less than this value away from 0.5 (a
	// coin flip). Zero disables early stopping.
	Threshold float64 `json:"threshold"`

	NumIterations int `json:"numIterations"`

	FeaturesFile string `json:"featuresFile"`
	ModelFile    string `json:"modelFile"`
	CorpusFile   string `json:"corpusFile"`

	// LoadModelURI optionally names a prior model served over
	// http(s):// or stored on the local filesystem (file:// or a bare
	// path), see package model. `run` fetches it (through CacheDB when
	// set) and logs its bias; training still starts from a fresh
	// ensemble.
	LoadModelURI string `json:"loadModelUri,omitempty"`

	// CacheDB optionally points at a sqlite file used to cache
	// fetched remote models (component G); empty disables caching.
	CacheDB string `json:"cacheDb,omitempty"`

	Verbosity int `json:"verbosity"`
}

// LoadConf reads and parses a JSON configuration file. Relative
// featuresFile/modelFile/corpusFile/cacheDb paths are resolved
// against the process working directory, the same join performed by
// the teacher for relative vertical-corpus paths.
func LoadConf(confPath string) (*Conf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, err
	}
	var conf Conf
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration %s: %w", confPath, err)
	}

	conf.FeaturesFile = resolvePath(conf.FeaturesFile)
	conf.ModelFile = resolvePath(conf.ModelFile)
	conf.CorpusFile = resolvePath(conf.CorpusFile)
	conf.CacheDB = resolvePath(conf.CacheDB)

	if conf.CorpusFile != "" && fs.IsDir(conf.CorpusFile) {
		return nil, fmt.Errorf("%w: corpusFile %s is a directory, not a file", cjkerr.ErrInvalidInput, conf.CorpusFile)
	}
	return &conf, nil
}

// resolvePath joins a relative path against the working directory;
// absolute paths and the empty string pass through unchanged.
func resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(fs.GetWorkingDir(), p)
}
