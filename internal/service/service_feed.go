// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/models"
)

// InternshipFeed fans full snapshots of a user's records out to every live
// subscription of that user.
//
// Each user with subscribers has a topic. Snapshots of one user are loaded
// under the topic lock, so Seq order equals load order and every
// subscriber sees snapshots in that order; users never wait on each other.
// A topic is dropped with its last subscriber. Delivery is latest-wins:
// each subscription buffers one snapshot and a newer one replaces an
// unread older one.
type InternshipFeed struct {
	repo store.InternshipRepository

	mu     sync.Mutex
	topics map[string]*feedTopic
	closed bool

	logger *logger.Logger
}

// feedTopic holds the subscribers of one user. subs is guarded by the
// feed mutex; seq by loadMu.
type feedTopic struct {
	loadMu sync.Mutex
	seq    uint64
	subs   map[*FeedSubscription]struct{}
}

// FeedSubscription is one live query registered with an [InternshipFeed].
type FeedSubscription struct {
	userID  string
	topic   *feedTopic
	updates chan models.RecordSet
	done    chan struct{}
	once    sync.Once
	feed    *InternshipFeed
}

func NewInternshipFeed(repo store.InternshipRepository, logger *logger.Logger) *InternshipFeed {
	return &InternshipFeed{
		repo:   repo,
		topics: make(map[string]*feedTopic),
		logger: logger,
	}
}

// Subscribe registers a subscription for userID and queues the current
// snapshot on it before returning.
func (f *InternshipFeed) Subscribe(ctx context.Context, userID string) (*FeedSubscription, error) {
	sub := &FeedSubscription{
		userID:  userID,
		updates: make(chan models.RecordSet, 1),
		done:    make(chan struct{}),
		feed:    f,
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrFeedClosed
	}
	topic := f.topics[userID]
	if topic == nil {
		topic = &feedTopic{subs: make(map[*FeedSubscription]struct{})}
		f.topics[userID] = topic
	}
	topic.subs[sub] = struct{}{}
	sub.topic = topic
	f.mu.Unlock()

	topic.loadMu.Lock()
	defer topic.loadMu.Unlock()

	set, err := f.load(ctx, userID, topic)
	if err != nil {
		sub.Close()
		return nil, err
	}
	sub.offer(set)

	f.logger.Debug().
		Str("func", "InternshipFeed.Subscribe").
		Str("user_id", userID).
		Uint64("seq", set.Seq).
		Msg("subscriber registered")

	return sub, nil
}

// Notify reloads the records of userID and delivers the snapshot to all of
// its subscribers. Users without subscribers cost nothing. Load failures
// are logged and leave subscribers on their previous snapshot.
func (f *InternshipFeed) Notify(ctx context.Context, userID string) {
	f.mu.Lock()
	topic := f.topics[userID]
	f.mu.Unlock()
	if topic == nil {
		return
	}

	// the write that triggered this is committed; finish even if the
	// request that made it goes away
	f.refresh(context.WithoutCancel(ctx), userID, topic)
}

// NotifyAll refreshes every user that has subscribers.
func (f *InternshipFeed) NotifyAll(ctx context.Context) {
	f.mu.Lock()
	topics := make(map[string]*feedTopic, len(f.topics))
	for userID, topic := range f.topics {
		topics[userID] = topic
	}
	f.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	for userID, topic := range topics {
		f.refresh(ctx, userID, topic)
	}
}

func (f *InternshipFeed) refresh(ctx context.Context, userID string, topic *feedTopic) {
	topic.loadMu.Lock()
	defer topic.loadMu.Unlock()

	subs := f.subscribersOf(topic)
	if len(subs) == 0 {
		return
	}

	set, err := f.load(ctx, userID, topic)
	if err != nil {
		f.logger.Err(err).
			Str("func", "InternshipFeed.Notify").
			Str("user_id", userID).
			Msg("failed to load snapshot")
		return
	}

	// subscribers that arrived during the load get it too
	subs = f.subscribersOf(topic)
	for _, sub := range subs {
		sub.offer(set)
	}

	f.logger.Debug().
		Str("func", "InternshipFeed.Notify").
		Str("user_id", userID).
		Uint64("seq", set.Seq).
		Int("subscribers", len(subs)).
		Msg("snapshot delivered")
}

// Close ends every subscription and refuses new ones.
func (f *InternshipFeed) Close() {
	f.mu.Lock()
	f.closed = true
	var all []*FeedSubscription
	for _, topic := range f.topics {
		for sub := range topic.subs {
			all = append(all, sub)
		}
	}
	f.mu.Unlock()

	for _, sub := range all {
		sub.Close()
	}
}

// SubscriberCount reports the live subscriptions of userID.
func (f *InternshipFeed) SubscriberCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if topic := f.topics[userID]; topic != nil {
		return len(topic.subs)
	}
	return 0
}

// TopicCount reports how many users currently have subscribers.
func (f *InternshipFeed) TopicCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics)
}

// load must be called with topic.loadMu held.
func (f *InternshipFeed) load(ctx context.Context, userID string, topic *feedTopic) (models.RecordSet, error) {
	records, err := f.repo.ListInternships(ctx, userID)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("error loading snapshot: %w", err)
	}
	if records == nil {
		records = []models.Internship{}
	}

	topic.seq++
	return models.RecordSet{Seq: topic.seq, Records: records}, nil
}

func (f *InternshipFeed) subscribersOf(topic *feedTopic) []*FeedSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := make([]*FeedSubscription, 0, len(topic.subs))
	for sub := range topic.subs {
		subs = append(subs, sub)
	}
	return subs
}

func (f *InternshipFeed) remove(sub *FeedSubscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(sub.topic.subs, sub)
	if len(sub.topic.subs) == 0 && f.topics[sub.userID] == sub.topic {
		delete(f.topics, sub.userID)
	}
}

// Updates delivers snapshots. The channel is never closed; select on
// [FeedSubscription.Done] as well.
func (s *FeedSubscription) Updates() <-chan models.RecordSet {
	return s.updates
}

// Done is closed once the subscription has ended.
func (s *FeedSubscription) Done() <-chan struct{} {
	return s.done
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *FeedSubscription) Close() {
	s.once.Do(func() {
		s.feed.remove(s)
		close(s.done)
	})
}

// offer replaces any unread snapshot with set.
func (s *FeedSubscription) offer(set models.RecordSet) {
	for {
		select {
		case s.updates <- set:
			return
		default:
		}

		select {
		case <-s.updates:
		default:
		}
	}
}
