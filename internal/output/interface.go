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

package output

// RecordWriter is the sink for streamed records. The host renderer and the
// CLI depend on it rather than on the NDJSON writer directly.
type RecordWriter interface {
	// Write writes a single record. It is flushed to the underlying
	// writer before Write returns, except for compressed files, which
	// flush on Close.
	Write(record any) error

	// Close releases the underlying file, if any.
	Close() error
}
