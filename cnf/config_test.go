// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University, Faculty of Arts,
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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/cjkseg/fs"
)

func TestLoadConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"language": "japanese",
		"threshold": 0.01,
		"numIterations": 300,
		"featuresFile": "features.txt",
		"modelFile": "japanese.model",
		"corpusFile": "corpus.txt"
	}`), 0o644))

	conf, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, "japanese", conf.Language)
	assert.Equal(t, 0.01, conf.Threshold)
	assert.Equal(t, 300, conf.NumIterations)
	assert.Equal(t, filepath.Join(fs.GetWorkingDir(), "features.txt"), conf.FeaturesFile)
	assert.Equal(t, filepath.Join(fs.GetWorkingDir(), "japanese.model"), conf.ModelFile)
	assert.Equal(t, filepath.Join(fs.GetWorkingDir(), "corpus.txt"), conf.CorpusFile)
}

func TestLoadConfAbsolutePathsPassThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	featuresAbs := filepath.Join(dir, "features.txt")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"language": "japanese",
		"featuresFile": "`+filepath.ToSlash(featuresAbs)+`"
	}`), 0o644))

	conf, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, featuresAbs, conf.FeaturesFile)
}

func TestLoadConfRejectsDirectoryAsCorpusFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"language": "japanese",
		"corpusFile": "`+filepath.ToSlash(dir)+`"
	}`), 0o644))

	_, err := LoadConf(path)
	assert.Error(t, err)
}

func TestLoadConfMissingFile(t *testing.T) {
	_, err := LoadConf(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err := LoadConf(path)
	assert.Error(t, err)
}
