package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogoutTimer_FiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32
	timer := newLogoutTimer(5*time.Millisecond, func() { fired.Add(1) })

	timer.Start(3)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, 0, timer.Remaining())
}

func TestLogoutTimer_StopPreventsExpiry(t *testing.T) {
	var fired atomic.Int32
	timer := newLogoutTimer(10*time.Millisecond, func() { fired.Add(1) })

	timer.Start(3)
	timer.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, 0, timer.Remaining())
}

func TestLogoutTimer_StartSupersedesPreviousCountdown(t *testing.T) {
	var fired atomic.Int32
	timer := newLogoutTimer(10*time.Millisecond, func() { fired.Add(1) })

	timer.Start(2)
	timer.Start(10)

	// the first countdown would have expired by now; only the second is live
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Greater(t, timer.Remaining(), 0)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestLogoutTimer_RemainingCountsDown(t *testing.T) {
	timer := newLogoutTimer(10*time.Millisecond, func() {})
	timer.Start(100)
	defer timer.Stop()

	assert.Equal(t, 100, timer.Remaining())

	time.Sleep(55 * time.Millisecond)
	remaining := timer.Remaining()
	assert.Less(t, remaining, 100)
	assert.Greater(t, remaining, 0)
}

func TestLogoutTimer_StopBeforeStartIsNoop(t *testing.T) {
	timer := newLogoutTimer(time.Millisecond, func() {})
	timer.Stop()
	assert.Equal(t, 0, timer.Remaining())
}
