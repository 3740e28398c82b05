package tui

import (
	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// sessionResolvedMsg ends the loading gate. user is nil when signed out.
type sessionResolvedMsg struct {
	user *models.CurrentUser
	err  error
}

type signedInMsg struct {
	user models.CurrentUser
	err  error
}

type signedOutMsg struct {
	err error
}

type profileLoadedMsg struct {
	profile models.User
	err     error
}

type subscribedMsg struct {
	sub *service.Subscription
	err error
}

// snapshotMsg and subscriptionEndedMsg carry their subscription so messages
// from a subscription closed by sign-out are dropped.
type snapshotMsg struct {
	sub *service.Subscription
	set models.RecordSet
}

type subscriptionEndedMsg struct {
	sub *service.Subscription
	err error
}

type savedMsg struct {
	id      string
	editing bool
	err     error
}

type deletedMsg struct {
	err error
}

type themeLoadedMsg struct {
	theme config.Theme
	err   error
}

type themeSavedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
	err     error
}
