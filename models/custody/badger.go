// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package custody

import (
	"github.com/dgraph-io/badger/v2"
)

// DefaultOptions returns the Badger options preferred for the directory
// database. The directory holds small records at low volume, so the options
// keep the memory footprint minimal.
func DefaultOptions(dir string) badger.Options {
	return badger.DefaultOptions(dir).
		WithMaxTableSize(16 << 20).
		WithValueLogFileSize(16 << 20).
		WithNumMemtables(1).
		WithCompactL0OnClose(false).
		WithLoadBloomsOnOpen(false).
		WithLogger(nil)
}
