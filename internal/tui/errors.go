// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/internship-tracker/internal/service"
)

// errorText is the message shown to the user for err.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return service.UserMessage(err)
}
