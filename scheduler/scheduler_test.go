package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mangawatch/core/domain"
	"mangawatch/core/tracker"
)

// fakeService counts cycle invocations; a zero interval makes the timer
// fire immediately so the loop can be observed without waiting
type fakeService struct {
	mu          sync.Mutex
	cycles      int
	settingsErr error
}

func (f *fakeService) GetSettings(ctx context.Context) (domain.Settings, error) {
	if f.settingsErr != nil {
		return domain.Settings{}, f.settingsErr
	}
	return domain.Settings{CheckIntervalMinutes: 0, NotificationsEnabled: true}, nil
}

func (f *fakeService) RunCheckCycle(ctx context.Context) (tracker.CycleStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cycles++
	return tracker.CycleStats{}, nil
}

func (f *fakeService) cycleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cycles
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

func TestScheduler_RunsCyclesUntilStopped(t *testing.T) {
	service := &fakeService{}
	sched := New(service, noopLogger{})

	sched.Start()

	deadline := time.After(2 * time.Second)
	for service.cycleCount() < 2 {
		select {
		case <-deadline:
			t.Fatal("scheduler never ran a cycle")
		case <-time.After(5 * time.Millisecond):
		}
	}

	sched.Stop()
	after := service.cycleCount()

	// No new cycles once Stop has returned
	time.Sleep(20 * time.Millisecond)
	if got := service.cycleCount(); got != after {
		t.Errorf("cycles after Stop = %d, want %d", got, after)
	}
}

func TestScheduler_StopReturnsPromptly(t *testing.T) {
	service := &fakeService{settingsErr: errors.New("store down")}
	sched := New(service, noopLogger{})

	sched.Start()

	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
