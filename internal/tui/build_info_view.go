// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/internship-tracker/models"
)

func renderBuildInfoWindow(st styles, info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: Internship Tracker\n")
	b.WriteString(info.String())
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage(st, "ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
