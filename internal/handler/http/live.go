// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/utils"
)

const (
	eventSnapshot = "snapshot"

	defaultHeartbeat = 20 * time.Second
)

// liveInternships streams the caller's record set. The current snapshot is
// sent right away and a new one after every change, each as an
// "event: snapshot" carrying a models.RecordSet. A ": ping" comment is sent
// every heartbeat interval while nothing changes. The stream ends when the
// client disconnects or the server shuts the feed down; the latter is
// announced with an "event: error".
func (h *Handler) liveInternships(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.liveInternships"
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.ownerFilter(w, r, fn)
	if !ok {
		return
	}

	if _, ok := w.(http.Flusher); !ok {
		log.Error().Str("func", fn).Msg("response writer cannot flush")
		utils.WriteError(w, app.MsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	sub, err := h.services.Feed.Subscribe(ctx, userID)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}
	defer sub.Close()

	stream, err := newSSEWriter(w)
	if err != nil {
		log.Err(err).Str("func", fn).Send()
		return
	}

	heartbeat := h.heartbeat
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	log.Info().Str("func", fn).Msg("live query opened")

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", fn).Msg("live query closed by client")
			return

		case <-sub.Done():
			stream.writeError(service.ErrFeedClosed.Error())
			return

		case set := <-sub.Updates():
			if err := stream.writeEvent(eventSnapshot, set); err != nil {
				log.Err(err).Str("func", fn).Msg("error writing snapshot")
				return
			}

		case <-ticker.C:
			if err := stream.writeComment("ping"); err != nil {
				log.Err(err).Str("func", fn).Msg("error writing heartbeat")
				return
			}
		}
	}
}
