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

package model

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/czcorpus/cjkseg/cjkerr"
)

// Fetch opens a model from a URI using one of three schemes: http://
// and https:// fetch over the network, file:// reads the local
// filesystem, and a bare path (no "scheme://" prefix at all) is
// opened directly. Any other "scheme://" form is rejected rather than
// silently handed to the filesystem. The caller must Close the result.
func Fetch(ctx context.Context, uri string) (io.ReadCloser, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: empty model uri", cjkerr.ErrInvalidInput)
	}

	scheme, rest, hasScheme := strings.Cut(uri, "://")
	if !hasScheme {
		return os.Open(uri)
	}

	switch scheme {
	case "http", "https":
		return fetchHTTP(ctx, uri)
	case "file":
		return os.Open(rest)
	default:
		return nil, fmt.Errorf("%w: unsupported model uri scheme %q", cjkerr.ErrInvalidInput, scheme)
	}
}

func fetchHTTP(ctx context.Context, uri string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", cjkerr.ErrInvalidInput, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: fetching %s returned status %d", cjkerr.ErrInvalidInput, uri, resp.StatusCode)
	}
	return resp.Body, nil
}
