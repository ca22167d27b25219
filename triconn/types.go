/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package triconn

import (
	"fmt"
	"log/slog"
)

// Logger is the minimal interface Compute uses to report progress. When
// no Logger is supplied, or WithLogger is given nil, Compute uses an
// adapter over slog.Default, so passing nil is always safe.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func defaultLogger() Logger {
	return slogLogger{l: slog.Default()}
}

// Result is the outcome of a Compute call: an ordered partition of
// 0-based vertex ids into three-edge-connected components.
type Result struct {
	// Components holds one slice of 0-based vertex ids per component,
	// in the order components were discovered.
	Components [][]int
}
