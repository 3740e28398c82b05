package service

import (
	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
)

// ClientServices aggregates everything the CLI and the TUI use.
type ClientServices struct {
	Auth        ClientAuthService
	Sync        RecordSync
	Preferences *PreferenceService
	Server      adapter.ServerAdapter
}

func NewClientServices(server adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Auth:        NewClientAuthService(storages.SessionRepository, server, server, logger),
		Sync:        NewInternshipSync(server, logger),
		Preferences: NewPreferenceService(storages.PreferenceRepository),
		Server:      server,
	}
}
