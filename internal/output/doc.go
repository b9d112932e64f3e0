// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output writes records as NDJSON (Newline Delimited JSON), one
// JSON object per line. The CLI uses it to stream a state snapshot after
// every refresh of the watch face and to print decoded dictionaries.
//
// Files whose name ends in .gz or .zst are compressed on the fly, so long
// replay sessions can be captured without large files.
//
// Example usage:
//
//	w, err := output.NewFileWriter("session.ndjson.zst")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Write(snapshot); err != nil {
//	    return err
//	}
package output
