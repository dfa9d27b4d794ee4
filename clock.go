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
	"time"
)

/// Machine is what a Clock drives.
///
type Machine interface {
	Tick() error
	TickTimers()
	Waiting() bool
}

/// Clock converts wall clock time into instruction and timer ticks. The two
/// run at independent rates.
///
type Clock struct {
	/// Speed is the number of instructions per second.
	///
	Speed int

	/// TimerRate is the number of timer ticks per second.
	///
	TimerRate int

	/// Time owed to the processor and the timers.
	///
	cycleTime time.Duration
	timerTime time.Duration

	/// Last time Advance was called.
	///
	last time.Time

	/// True while the schedule is frozen.
	///
	paused bool
}

/// Most time made up in a single Advance. A host that stalls (window
/// dragged, process suspended) doesn't get a burst of instructions after.
///
const maxCatchUp = time.Second

/// Speed limits.
///
const (
	MinSpeed = 60
	MaxSpeed = 10000
)

/// NewClock returns a clock starting now.
///
func NewClock(speed, timerRate int) *Clock {
	return &Clock{
		Speed:     speed,
		TimerRate: timerRate,
		last:      time.Now(),
	}
}

/// Restart the schedule at now, forgiving any time owed.
///
func (c *Clock) Restart(now time.Time) {
	c.last = now
	c.cycleTime = 0
	c.timerTime = 0
}

/// Paused is true while the clock isn't advancing the machine.
///
func (c *Clock) Paused() bool {
	return c.paused
}

/// SetPaused freezes or resumes the schedule. Time spent paused is never
/// made up.
///
func (c *Clock) SetPaused(paused bool, now time.Time) {
	if c.paused && !paused {
		c.Restart(now)
	}

	c.paused = paused
}

/// IncSpeed doubles the processor speed, up to MaxSpeed.
///
func (c *Clock) IncSpeed() {
	if c.Speed *= 2; c.Speed > MaxSpeed {
		c.Speed = MaxSpeed
	}
}

/// DecSpeed halves the processor speed, down to MinSpeed.
///
func (c *Clock) DecSpeed() {
	if c.Speed /= 2; c.Speed < MinSpeed {
		c.Speed = MinSpeed
	}
}

/// Advance runs the machine for the time elapsed since the last call. The
/// batch ends early if the machine faults, or if it starts waiting on a key
/// (the rest of the slice is dropped, so nothing piles up while it waits).
///
func (c *Clock) Advance(m Machine, now time.Time) error {
	elapsed := now.Sub(c.last)
	c.last = now

	if c.paused || elapsed <= 0 {
		return nil
	}

	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}

	// timers first, they run even while the processor waits
	if c.TimerRate > 0 {
		period := time.Second / time.Duration(c.TimerRate)

		for c.timerTime += elapsed; c.timerTime >= period; c.timerTime -= period {
			m.TickTimers()
		}
	}

	if c.Speed <= 0 {
		return nil
	}

	period := time.Second / time.Duration(c.Speed)

	for c.cycleTime += elapsed; c.cycleTime >= period; c.cycleTime -= period {
		if err := m.Tick(); err != nil {
			c.cycleTime = 0
			return err
		}

		if m.Waiting() {
			c.cycleTime = 0
			break
		}
	}

	return nil
}
