// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
)

const defaultReconnectDelay = 2 * time.Second

// listenConn is the part of *pgx.Conn the listener uses.
type listenConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// ChangeListener LISTENs on the PostgreSQL change channel and forwards
// every notification to the live feed. The payload is the id of the user
// whose records changed, so writes made by other server instances reach
// local subscribers too.
//
// A broken connection is re-established after a fixed delay until the
// context is cancelled. Changes made while the listener was disconnected
// are never delivered, so after every reconnect all users with live
// subscribers are refreshed.
type ChangeListener struct {
	dsn      string
	channel  string
	notifier service.ChangeNotifier

	dial           func(ctx context.Context, dsn string) (listenConn, error)
	reconnectDelay time.Duration

	logger *logger.Logger
}

func NewChangeListener(dsn, channel string, notifier service.ChangeNotifier, logger *logger.Logger) *ChangeListener {
	return &ChangeListener{
		dsn:      dsn,
		channel:  channel,
		notifier: notifier,
		dial: func(ctx context.Context, dsn string) (listenConn, error) {
			return pgx.Connect(ctx, dsn)
		},
		reconnectDelay: defaultReconnectDelay,
		logger:         logger,
	}
}

func (l *ChangeListener) Name() string {
	return "change-listener"
}

func (l *ChangeListener) Run(ctx context.Context) error {
	for resync := false; ; resync = true {
		err := l.listen(ctx, resync)
		if ctx.Err() != nil {
			return nil
		}

		l.logger.Err(err).
			Str("func", "ChangeListener.Run").
			Str("channel", l.channel).
			Dur("retry_in", l.reconnectDelay).
			Msg("listener connection lost")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.reconnectDelay):
		}
	}
}

// listen holds one connection until it fails or ctx is done.
func (l *ChangeListener) listen(ctx context.Context, resync bool) error {
	conn, err := l.dial(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("error connecting listener: %w", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	if _, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("error subscribing to channel %q: %w", l.channel, err)
	}

	l.logger.Info().Str("func", "ChangeListener.listen").Str("channel", l.channel).Msg("listening for changes")

	if resync {
		l.notifier.NotifyAll(ctx)
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			return fmt.Errorf("error waiting for notification: %w", err)
		}

		if notification.Payload == "" {
			continue
		}

		l.logger.Debug().
			Str("func", "ChangeListener.listen").
			Str("user_id", notification.Payload).
			Uint32("pid", notification.PID).
			Msg("change received")

		l.notifier.Notify(ctx, notification.Payload)
	}
}
