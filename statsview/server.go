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

// Package statsview serves live runtime charts (heap, goroutines, GC
// pauses) for a running emulator over HTTP. The server is only compiled in
// with the statsview build tag; without it Start returns ErrUnavailable.
package statsview

import (
	"errors"
)

// DefaultAddress is where the chart server listens unless told otherwise.
const DefaultAddress = "localhost:12600"

// chartsPath is the page go-echarts/statsview serves its dashboard on.
const chartsPath = "/debug/statsview"

// ErrUnavailable is returned by Start in builds without the server.
var ErrUnavailable = errors.New("stats server not compiled in, rebuild with -tags statsview")

// URL returns the dashboard address for a server listening on addr.
func URL(addr string) string {
	return "http://" + addr + chartsPath
}
