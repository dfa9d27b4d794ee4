package main

import (
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

// counter is a Machine that counts what it's asked to do.
type counter struct {
	ticks     int
	timers    int
	waitAfter int
	failAfter int
}

var errTest = errors.New("test fault")

func (m *counter) Tick() error {
	m.ticks++
	if m.failAfter > 0 && m.ticks >= m.failAfter {
		return errTest
	}
	return nil
}

func (m *counter) TickTimers() {
	m.timers++
}

func (m *counter) Waiting() bool {
	return m.waitAfter > 0 && m.ticks >= m.waitAfter
}

func TestClockRates(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)

	var m counter
	assert.NoError(t, c.Advance(&m, start.Add(time.Second)))
	assert.Equal(t, 500, m.ticks)
	assert.Equal(t, 60, m.timers)
}

func TestClockAccumulates(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)

	var m counter
	now := start

	// 1ms at a time: half an instruction per call
	for i := 0; i < 100; i++ {
		now = now.Add(time.Millisecond)
		assert.NoError(t, c.Advance(&m, now))
	}

	assert.Equal(t, 50, m.ticks)
	assert.Equal(t, 6, m.timers)
}

func TestClockCatchUpIsBounded(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)

	var m counter
	assert.NoError(t, c.Advance(&m, start.Add(time.Minute)))
	assert.Equal(t, 500, m.ticks)
	assert.Equal(t, 60, m.timers)
}

func TestClockPaused(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)
	c.SetPaused(true, start)
	assert.True(t, c.Paused())

	var m counter
	assert.NoError(t, c.Advance(&m, start.Add(time.Second)))
	assert.Equal(t, 0, m.ticks)
	assert.Equal(t, 0, m.timers)

	// time spent paused isn't owed
	c.SetPaused(false, start.Add(5*time.Second))
	assert.NoError(t, c.Advance(&m, start.Add(5*time.Second+100*time.Millisecond)))
	assert.Equal(t, 50, m.ticks)
	assert.Equal(t, 6, m.timers)
}

func TestClockStopsWhenWaiting(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)

	m := counter{waitAfter: 3}
	assert.NoError(t, c.Advance(&m, start.Add(time.Second)))
	assert.Equal(t, 3, m.ticks)

	// timers keep running
	assert.Equal(t, 60, m.timers)

	// the dropped time is not made up later
	assert.NoError(t, c.Advance(&m, start.Add(time.Second+2*time.Millisecond)))
	assert.Equal(t, 4, m.ticks)
}

func TestClockStopsOnError(t *testing.T) {
	start := time.Unix(1000, 0)

	c := NewClock(500, 60)
	c.Restart(start)

	m := counter{failAfter: 10}
	err := c.Advance(&m, start.Add(time.Second))
	assert.True(t, errors.Is(err, errTest))
	assert.Equal(t, 10, m.ticks)
}

func TestClockSpeedLimits(t *testing.T) {
	c := NewClock(500, 60)

	c.IncSpeed()
	assert.Equal(t, 1000, c.Speed)

	for i := 0; i < 10; i++ {
		c.IncSpeed()
	}
	assert.Equal(t, MaxSpeed, c.Speed)

	for i := 0; i < 20; i++ {
		c.DecSpeed()
	}
	assert.Equal(t, MinSpeed, c.Speed)
}
