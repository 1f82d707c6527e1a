package reservation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
)

// Snapshot is the full current booking set for one (room, date) partition.
// Snapshots are never deltas: consumers recompute from the whole set. Error
// carries the degraded-availability notice when the feed cannot be served.
type Snapshot struct {
	RoomID   string               `json:"roomId"`
	Date     string               `json:"date"`
	Bookings []models.BookingView `json:"bookings"`
	Error    string               `json:"error,omitempty"`
}

// Subscription is one live (room, date) feed. C closes after Unsubscribe or
// after a terminal transport failure. Unsubscribe is mandatory and
// idempotent: an abandoned subscription keeps pushing a stale date's
// snapshots and leaks the room feed.
type Subscription struct {
	C    <-chan Snapshot
	stop func()
}

func (s *Subscription) Unsubscribe() { s.stop() }

type subscriber struct {
	date string
	ch   chan Snapshot
}

type roomFeed struct {
	room   models.Room
	cancel context.CancelFunc
	subs   map[*subscriber]struct{}
}

// SyncHub bridges the store's push-based change feed into pull-based
// consumers. One store watch per room, shared by all of that room's
// subscribers; each change republishes a full re-listed snapshot to every
// subscriber on the affected date. OnChange, when set, is told about every
// observed change (used to drop cached day listings). Now is a clock hook
// for tests.
type SyncHub struct {
	Repo     bookingRepo.BookingRepository
	OnChange func(roomID, date string)
	Now      func() time.Time

	mu    sync.Mutex
	feeds map[string]*roomFeed
}

func (h *SyncHub) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Subscribe opens a feed for one (room, date). The subscriber receives an
// immediate initial snapshot, then a fresh snapshot after every change to
// the room's collection that can affect the date. Switching dates is
// Unsubscribe plus a new Subscribe; there is no rebind.
func (h *SyncHub) Subscribe(ctx context.Context, roomID, date string) (*Subscription, error) {
	room, ok := models.RoomByID(roomID)
	if !ok {
		return nil, NewNotFoundError("unknown room %q", roomID)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}

	h.mu.Lock()
	if h.feeds == nil {
		h.feeds = make(map[string]*roomFeed)
	}
	feed, ok := h.feeds[roomID]
	if !ok {
		feedCtx, cancel := context.WithCancel(context.Background())
		events, err := h.Repo.Watch(feedCtx, room)
		if err != nil {
			cancel()
			h.mu.Unlock()
			return nil, NewTransportError("failed to subscribe to %s: %v", roomID, err)
		}
		feed = &roomFeed{room: room, cancel: cancel, subs: make(map[*subscriber]struct{})}
		h.feeds[roomID] = feed
		go h.run(feed, events)
	}
	sub := &subscriber{date: date, ch: make(chan Snapshot, 8)}
	feed.subs[sub] = struct{}{}
	h.mu.Unlock()

	// Initial full snapshot, so the subscriber never starts blank.
	h.publish(ctx, feed, date)

	var once sync.Once
	return &Subscription{
		C:    sub.ch,
		stop: func() { once.Do(func() { h.drop(feed, sub) }) },
	}, nil
}

// run consumes a room's change feed until it closes. Closure while the feed
// is still registered means the transport died; subscribers get a degraded
// snapshot and a closed channel instead of silently stale data.
func (h *SyncHub) run(feed *roomFeed, events <-chan bookingRepo.ChangeEvent) {
	for ev := range events {
		if h.OnChange != nil {
			h.OnChange(ev.RoomID, ev.Date)
		}
		for _, date := range h.affectedDates(feed, ev) {
			h.publish(context.Background(), feed, date)
		}
	}
	h.fail(feed)
}

// affectedDates resolves which subscribed dates must re-list for an event.
// Events without a date (deletes) affect every subscribed date.
func (h *SyncHub) affectedDates(feed *roomFeed, ev bookingRepo.ChangeEvent) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[string]bool)
	var dates []string
	for sub := range feed.subs {
		if ev.Date != "" && sub.date != ev.Date {
			continue
		}
		if !seen[sub.date] {
			seen[sub.date] = true
			dates = append(dates, sub.date)
		}
	}
	return dates
}

// publish re-lists one (room, date) and fans the snapshot out to its
// subscribers. A slow subscriber drops the frame instead of blocking the
// feed; every snapshot is the full set, so the next one makes it whole.
func (h *SyncHub) publish(ctx context.Context, feed *roomFeed, date string) {
	snap := Snapshot{RoomID: feed.room.ID, Date: date}
	bookings, err := h.Repo.ListByDate(ctx, feed.room, date)
	if err != nil {
		zap.L().Warn("failed to list bookings for snapshot",
			zap.String("room", feed.room.ID), zap.String("date", date), zap.Error(err))
		snap.Error = "failed to load bookings"
	} else {
		snap.Bookings = classifyAll(bookings, h.now())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range feed.subs {
		if sub.date != date {
			continue
		}
		select {
		case sub.ch <- snap:
		default:
		}
	}
}

// drop removes one subscriber and tears the room feed down when it was the
// last one. Teardown cancels the store watch: no feed outlives its
// subscribers.
func (h *SyncHub) drop(feed *roomFeed, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := feed.subs[sub]; !ok {
		return
	}
	delete(feed.subs, sub)
	close(sub.ch)
	if len(feed.subs) == 0 {
		feed.cancel()
		if h.feeds[feed.room.ID] == feed {
			delete(h.feeds, feed.room.ID)
		}
	}
}

// fail ends a feed whose change stream died: every subscriber receives a
// final degraded snapshot and a closed channel. The feed is deregistered so
// a later Subscribe opens a fresh watch; retrying is the caller's decision.
func (h *SyncHub) fail(feed *roomFeed) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.feeds[feed.room.ID] == feed {
		delete(h.feeds, feed.room.ID)
	}
	feed.cancel()
	for sub := range feed.subs {
		select {
		case sub.ch <- Snapshot{RoomID: feed.room.ID, Date: sub.date, Error: "live updates unavailable"}:
		default:
		}
		close(sub.ch)
		delete(feed.subs, sub)
	}
}
