package adapter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/internship-tracker/models"
)

const (
	eventSnapshot = "snapshot"
	eventError    = "error"

	maxEventSize = 4 * 1024 * 1024
)

// sseStream decodes a text/event-stream body into record sets. Comment
// lines (": ping") and unknown events are skipped.
type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner

	closeOnce sync.Once
	closeErr  error

	mu  sync.Mutex
	err error
}

func newSSEStream(body io.ReadCloser) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	return &sseStream{body: body, scanner: scanner}
}

func (s *sseStream) Next() (models.RecordSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return models.RecordSet{}, s.err
	}

	for {
		event, data, err := s.readEvent()
		if err != nil {
			s.err = err
			return models.RecordSet{}, err
		}

		switch event {
		case eventSnapshot:
			var set models.RecordSet
			if err := json.Unmarshal([]byte(data), &set); err != nil {
				s.err = fmt.Errorf("%w: decoding snapshot: %w", ErrStreamClosed, err)
				return models.RecordSet{}, s.err
			}
			return set, nil
		case eventError:
			s.err = fmt.Errorf("%w: %s", ErrStreamClosed, errorMessage(0, []byte(data)))
			return models.RecordSet{}, s.err
		}
	}
}

// readEvent reads lines up to the blank line that terminates an event.
func (s *sseStream) readEvent() (event, data string, err error) {
	var dataLines []string

	for s.scanner.Scan() {
		line := s.scanner.Text()

		switch {
		case line == "":
			if event == "" && len(dataLines) == 0 {
				continue
			}
			if event == "" {
				event = "message"
			}
			return event, strings.Join(dataLines, "\n"), nil
		case strings.HasPrefix(line, ":"):
			// keep-alive comment
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			dataLines = append(dataLines, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := s.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrStreamClosed, err)
	}
	return "", "", fmt.Errorf("%w: %w", ErrStreamClosed, io.EOF)
}

func (s *sseStream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
