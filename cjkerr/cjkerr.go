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

// Package cjkerr defines the sentinel error kinds shared by the
// segmentation/feature engine and the AdaBoost learner. Callers
// should test with errors.Is against these values rather than
// comparing error strings.
package cjkerr

import "errors"

var (
	// ErrInvalidInput marks a bad language code, URI scheme or CLI argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidData marks a malformed feature file, malformed model
	// file, an empty feature vocabulary or an attempt to save an
	// empty model.
	ErrInvalidData = errors.New("invalid data")

	// ErrUnsupported marks a request for functionality that is not
	// built into this binary (e.g. a model URI scheme with no
	// fetcher wired in).
	ErrUnsupported = errors.New("unsupported")

	// ErrCancelled marks a training run halted by a cleared cancel
	// flag / cancelled context. Callers must not treat it as failure:
	// the metrics computed up to the point of cancellation are valid.
	ErrCancelled = errors.New("cancelled")
)
