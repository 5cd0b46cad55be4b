// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes the console lines of the lab. Both printers default
// to the standard logger.
package conlog

import (
	"log"
)

var (
	p  func(string, ...interface{}) = log.Printf
	sp func(string, ...interface{}) = log.Printf
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}
func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// SafePrintf is used for lines that must not be interleaved with a frame in
// progress, like the GL debug callback.
func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}
