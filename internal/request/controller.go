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

// Package request issues weather requests to the phone and tracks
// consecutive delivery failures against a retry ceiling.
package request

import (
	"log/slog"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// Transport is the outbound side of the host message channel.
type Transport interface {
	// Connected reports whether the paired phone is reachable.
	Connected() bool
	// Begin opens the outbox for a new message.
	Begin() appmsg.Result
	// Send submits msg. Delivery is reported later through the
	// controller's OnSent and OnFailed callbacks.
	Send(msg appmsg.Dictionary) appmsg.Result
}

// RetryConfig configures the retry ceiling for outbound requests.
type RetryConfig struct {
	// MaxRetries is the number of consecutive failures tolerated before a
	// submission is refused and the counter starts over.
	MaxRetries int
	// OnExhausted is called each time the ceiling refuses a submission.
	OnExhausted func()
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{MaxRetries: 2}
}

// Controller submits weather requests and owns the retry counter. Like the
// rest of the link it is driven from a single callback thread.
type Controller struct {
	transport Transport
	config    *RetryConfig
	retries   int
	logger    *slog.Logger
}

// NewController creates a controller over transport.
func NewController(transport Transport, config *RetryConfig, logger *slog.Logger) *Controller {
	if config == nil {
		config = DefaultRetryConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		transport: transport,
		config:    config,
		logger:    logger,
	}
}

// Request submits the current configuration as a weather request. It
// reports whether the message was handed to the transport, not whether it
// was delivered. Once the ceiling is exceeded the counter is cleared and
// the transport is not touched.
func (c *Controller) Request(st *weather.Data) bool {
	c.logger.Debug("request weather", "retry", c.retries)

	if c.retries > c.config.MaxRetries {
		c.logger.Debug("too many retries", "max", c.config.MaxRetries)
		c.retries = 0
		if c.config.OnExhausted != nil {
			c.config.OnExhausted()
		}
		return false
	}

	if !c.transport.Connected() {
		st.Status = weather.StatusDisconnected
		return false
	}

	if res := c.transport.Begin(); res != appmsg.ResultOK {
		c.logger.Debug("outbox unavailable", "result", res)
		return false
	}

	res := c.transport.Send(Message(st))
	if res != appmsg.ResultOK {
		c.logger.Debug("outbox send refused", "result", res)
	}
	return res == appmsg.ResultOK
}

// Message builds the outbound request dictionary for st. Fields are always
// written in the same order.
func Message(st *weather.Data) appmsg.Dictionary {
	return appmsg.Dictionary{}.
		Add(appmsg.KeyService, appmsg.CString(st.Provider.String())).
		Add(appmsg.KeyScale, appmsg.CString(st.Scale.String())).
		Add(appmsg.KeyDebug, appmsg.Bool(st.Debug)).
		Add(appmsg.KeyBattery, appmsg.Bool(st.Battery))
}

// OnSent handles a delivery acknowledgement.
func (c *Controller) OnSent(msg appmsg.Dictionary) {
	c.logger.Debug("out sent", "tuples", len(msg))
}

// OnDropped handles an inbound message the host discarded.
func (c *Controller) OnDropped(reason appmsg.Result) {
	c.logger.Debug("in dropped", "reason", reason)
}

// OnFailed handles a delivery failure: it counts the failure, records why
// in st and immediately submits the request again. The result of that
// resubmission is returned.
//
// There is no backoff; a persistently failing link retries back to back
// until the ceiling is reached.
func (c *Controller) OnFailed(msg appmsg.Dictionary, reason appmsg.Result, st *weather.Data) bool {
	c.logger.Debug("out failed", "reason", reason, "tuples", len(msg))

	c.retries++

	switch reason {
	case appmsg.ResultNotConnected:
		st.Status = weather.StatusDisconnected
	default:
		st.Status = weather.StatusPhone
	}

	return c.Request(st)
}

// ResetRetries clears the failure counter. Any inbound message counts as
// evidence the link is healthy.
func (c *Controller) ResetRetries() {
	c.retries = 0
}

// Retries returns the current number of consecutive failures.
func (c *Controller) Retries() int {
	return c.retries
}
