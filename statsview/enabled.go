//go:build statsview
// +build statsview

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

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Server is a running chart server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
	errs chan error
}

// Start listens on addr in the background. Listen failures arrive on Err.
func Start(addr string) (*Server, error) {
	viewer.SetConfiguration(viewer.WithAddr(addr))

	s := &Server{
		mgr:  statsview.New(),
		addr: addr,
		errs: make(chan error, 1),
	}

	go func() {
		s.errs <- s.mgr.Start()
	}()

	return s, nil
}

// URL of the dashboard.
func (s *Server) URL() string {
	return URL(s.addr)
}

// Err yields the result of the listener once it stops.
func (s *Server) Err() <-chan error {
	return s.errs
}

// Stop shuts the listener down.
func (s *Server) Stop() {
	if s != nil && s.mgr != nil {
		s.mgr.Stop()
	}
}
