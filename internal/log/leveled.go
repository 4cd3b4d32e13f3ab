// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package log

// Leveled adapts the global logger to the key/value leveled logger
// interface of HTTP clients such as go-retryablehttp. It resolves Logger on
// every call, so it follows later Initialize calls.
type Leveled struct{}

func (Leveled) Error(msg string, keysAndValues ...any) { Logger.Errorw(msg, keysAndValues...) }
func (Leveled) Warn(msg string, keysAndValues ...any)  { Logger.Warnw(msg, keysAndValues...) }
func (Leveled) Info(msg string, keysAndValues ...any)  { Logger.Infow(msg, keysAndValues...) }
func (Leveled) Debug(msg string, keysAndValues ...any) { Logger.Debugw(msg, keysAndValues...) }
