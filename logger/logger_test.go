/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "OFF", OFF.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WARN, &buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warn("warn %d", 3)
	l.Error("error %d", 4)
	out := buf.String()
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(ERROR, &buf)

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.SetLevel(DEBUG)
	l.Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestOffSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(OFF, &buf)

	l.Error("never written")
	assert.Empty(t, buf.String())
}

func TestDiscardLogger(t *testing.T) {
	l := NewDiscardLogger()
	// No output sink to inspect; just exercise the calls.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	l.SetLevel(DEBUG)
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))

	Debug("through the default")
	assert.Contains(t, buf.String(), "through the default")
}
