// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/logger"
)

// ANSI colour codes
const (
	CoReset  = "\x1b[0m"
	CoRed    = "\x1b[31m"
	CoGreen  = "\x1b[32m"
	CoYellow = "\x1b[33m"
	CoCyan   = "\x1b[36m"
)

// LogInfo - message at info level in the given colour
func LogInfo(log *logger.L, color string, message string) {
	log.Infof("%s%s%s", color, message, CoReset)
}

// LogWarn - message at warn level in the given colour
func LogWarn(log *logger.L, color string, message string) {
	log.Warnf("%s%s%s", color, message, CoReset)
}

// LogError - message at error level in the given colour
func LogError(log *logger.L, color string, message string) {
	log.Errorf("%s%s%s", color, message, CoReset)
}
