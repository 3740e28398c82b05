// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/mock"
)

// funcWorker adapts a function to Worker.
type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

func (f funcWorker) Run(ctx context.Context) error { return f.run(ctx) }
func (f funcWorker) Name() string                  { return f.name }

func TestWorkers_RunStopsOnCancel(t *testing.T) {
	var started atomic.Int32
	blocking := func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	}

	ws := &Workers{logger: logger.Nop()}
	ws.Add(funcWorker{"a", blocking})
	ws.Add(funcWorker{"b", blocking})
	require.Equal(t, 2, ws.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_FirstFailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	var stopped atomic.Bool

	ws := &Workers{logger: logger.Nop()}
	ws.Add(funcWorker{"failing", func(context.Context) error { return boom }})
	ws.Add(funcWorker{"waiting", func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return nil
	}})

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "worker failing")
	assert.True(t, stopped.Load())
}

func TestWorkers_RunMockedWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mock.NewMockWorker(ctrl)
	w.EXPECT().Name().Return("mocked").AnyTimes()
	w.EXPECT().Run(gomock.Any()).Return(nil).Times(1)

	ws := &Workers{logger: logger.Nop()}
	ws.Add(w)

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_RunEmpty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}
	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StructuredConfig
		want    int
		wantErr bool
	}{
		{
			name: "listener disabled",
			cfg:  config.StructuredConfig{Storage: config.Storage{DB: config.DB{DSN: "postgres://h/db"}}},
			want: 0,
		},
		{
			name: "listener on postgres",
			cfg: config.StructuredConfig{
				Storage: config.Storage{DB: config.DB{DSN: "postgres://h/db"}},
				Workers: config.Workers{ListenerEnabled: true, ChangeChannel: "internships_changed"},
			},
			want: 1,
		},
		{
			name: "listener skipped on sqlite",
			cfg: config.StructuredConfig{
				Storage: config.Storage{DB: config.DB{DSN: "sqlite://tracker.db"}},
				Workers: config.Workers{ListenerEnabled: true},
			},
			want: 0,
		},
		{
			name: "unknown backend",
			cfg: config.StructuredConfig{
				Storage: config.Storage{DB: config.DB{DSN: "mysql://h/db"}},
				Workers: config.Workers{ListenerEnabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := NewWorkers(&tt.cfg, &recordingNotifier{}, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ws.Len())
		})
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	users   []string
	resyncs int
}

func (n *recordingNotifier) Notify(_ context.Context, userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
}

func (n *recordingNotifier) NotifyAll(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resyncs++
}

func (n *recordingNotifier) resyncCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resyncs
}

func (n *recordingNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.users...)
}
