/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"fmt"
)

// StatusLog keeps the most recent status lines of the emulator for the
// front-ends to show (window title, lines below the terminal screen).
type StatusLog struct {
	// buf contains each line of logged text, oldest first.
	buf []string

	// max is the number of lines kept.
	max int

	// pos is the current user read position within the log.
	pos int
}

// NewStatusLog creates a new StatusLog keeping up to max lines.
func NewStatusLog(max int) *StatusLog {
	if max < 1 {
		max = 1
	}

	return &StatusLog{
		buf: make([]string, 0, max),
		max: max,
	}
}

// Log formats and appends a new line.
func (log *StatusLog) Log(format string, args ...interface{}) {
	scroll := log.pos == len(log.buf)

	// add the new line, dropping the oldest when full
	log.buf = append(log.buf, fmt.Sprintf(format, args...))

	if over := len(log.buf) - log.max; over > 0 {
		log.buf = append(log.buf[:0], log.buf[over:]...)

		if log.pos -= over; log.pos < 0 {
			log.pos = 0
		}
	}

	if scroll {
		log.pos = len(log.buf)
	}
}

// Last returns the newest line, or "" if nothing was logged.
func (log *StatusLog) Last() string {
	if len(log.buf) == 0 {
		return ""
	}

	return log.buf[len(log.buf)-1]
}

// Window returns up to n lines ending at the read position.
func (log *StatusLog) Window(n int) []string {
	start := log.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	return log.buf[start:log.pos]
}

// ScrollUp scrolls the log back one position.
func (log *StatusLog) ScrollUp() {
	if log.pos > 0 {
		log.pos--
	}
}

// ScrollDown scrolls the log forward one position.
func (log *StatusLog) ScrollDown() {
	if log.pos < len(log.buf) {
		log.pos++
	}
}

// End scrolls the log to the newest line.
func (log *StatusLog) End() {
	log.pos = len(log.buf)
}
