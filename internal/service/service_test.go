package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/models"
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleFields(company, deadline string, status models.Status) models.InternshipFields {
	return models.InternshipFields{
		Company:  company,
		Role:     "Software Intern",
		Link:     "https://jobs.example.com/" + company,
		Deadline: deadline,
		Status:   status,
	}
}

// recordingNotifier remembers every Notify call.
type recordingNotifier struct {
	mu    sync.Mutex
	users []string
}

func (n *recordingNotifier) Notify(_ context.Context, userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
}

func (n *recordingNotifier) NotifyAll(context.Context) {}

func (n *recordingNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.users...)
}
