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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNotImplemented is returned by operations that are declared but reserved
	// for a later release, such as the fast-resume weather snapshot.
	// Maps to exit code 1.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMalformedMessage indicates a message dictionary could not be decoded.
	// Maps to exit code 3.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrMessageTooLarge indicates an encoded dictionary exceeds the inbox or outbox size.
	// Maps to exit code 3.
	ErrMessageTooLarge = errors.New("message exceeds buffer size")

	// ErrUnknownKey indicates a message key name that is not part of the protocol.
	// Maps to exit code 3.
	ErrUnknownKey = errors.New("unknown message key")

	// ErrStorageUnavailable indicates the durable settings store could not be opened or written.
	// Maps to exit code 2.
	ErrStorageUnavailable = errors.New("settings storage unavailable")

	// ErrStateCorrupted indicates a settings file failed its checksum or version check.
	// Maps to exit code 2.
	ErrStateCorrupted = errors.New("settings state corrupted")

	// ErrInvalidConfig indicates the configuration failed validation.
	// Maps to exit code 2.
	ErrInvalidConfig = errors.New("invalid configuration")
)
