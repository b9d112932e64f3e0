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

package appmsg

// Result is a host transport status code, reported when submitting an
// outbound message and in the delivery callbacks.
type Result uint32

const (
	ResultOK                        Result = 0
	ResultSendTimeout               Result = 1 << 1
	ResultSendRejected              Result = 1 << 2
	ResultNotConnected              Result = 1 << 3
	ResultAppNotRunning             Result = 1 << 4
	ResultInvalidArgs               Result = 1 << 5
	ResultBusy                      Result = 1 << 6
	ResultBufferOverflow            Result = 1 << 7
	ResultAlreadyReleased           Result = 1 << 9
	ResultCallbackAlreadyRegistered Result = 1 << 10
	ResultCallbackNotRegistered     Result = 1 << 11
	ResultOutOfMemory               Result = 1 << 12
	ResultClosed                    Result = 1 << 13
	ResultInternalError             Result = 1 << 14
)

var resultNames = map[Result]string{
	ResultOK:                        "APP_MSG_OK",
	ResultSendTimeout:               "APP_MSG_SEND_TIMEOUT",
	ResultSendRejected:              "APP_MSG_SEND_REJECTED",
	ResultNotConnected:              "APP_MSG_NOT_CONNECTED",
	ResultAppNotRunning:             "APP_MSG_APP_NOT_RUNNING",
	ResultInvalidArgs:               "APP_MSG_INVALID_ARGS",
	ResultBusy:                      "APP_MSG_BUSY",
	ResultBufferOverflow:            "APP_MSG_BUFFER_OVERFLOW",
	ResultAlreadyReleased:           "APP_MSG_ALREADY_RELEASED",
	ResultCallbackAlreadyRegistered: "APP_MSG_CALLBACK_ALREADY_REGISTERED",
	ResultCallbackNotRegistered:     "APP_MSG_CALLBACK_NOT_REGISTERED",
	ResultOutOfMemory:               "APP_MSG_OUT_OF_MEMORY",
	ResultClosed:                    "APP_MSG_CLOSED",
	ResultInternalError:             "APP_MSG_INTERNAL_ERROR",
}

// String returns the host's name for r.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "UNKNOWN ERROR"
}

// ParseResult maps a host result name back to its code.
func ParseResult(name string) (Result, bool) {
	for r, n := range resultNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}
