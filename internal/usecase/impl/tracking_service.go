package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/domain/service"
	"convoytrack/internal/usecase"
)

const (
	defaultTickPeriod    = 20 * time.Second
	defaultLocateTimeout = 5 * time.Second
)

// trackingService owns the merchant session's polling loop. The distance
// state map and the merchant origin are touched only from the loop
// goroutine; everything consumers see is an immutable published tick
// (copy-on-publish, not lock-based sharing).
type trackingService struct {
	convoyRepo  repository.ConvoyRepository
	rosterRepo  repository.RosterRepository
	headcountUC usecase.HeadcountUsecase
	locator     service.DeviceLocator
	logger      *slog.Logger

	tickPeriod    time.Duration
	locateTimeout time.Duration
	thresholds    trendThresholds

	// Loop-owned state, never shared.
	states        map[string]*entity.DistanceState
	origin        *entity.Coordinate
	feedChecked   bool
	feedAvailable bool

	mu     sync.RWMutex
	latest *entity.TrackingTick
	subs   map[int]chan *entity.TrackingTick
	nextID int

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	convoyRepo repository.ConvoyRepository,
	rosterRepo repository.RosterRepository,
	headcountUC usecase.HeadcountUsecase,
	locator service.DeviceLocator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	tickPeriod := defaultTickPeriod
	locateTimeout := defaultLocateTimeout
	var trackingCfg *config.TrackingConfig
	if cfg != nil {
		trackingCfg = cfg.Tracking
	}
	if trackingCfg != nil {
		if trackingCfg.TickPeriod > 0 {
			tickPeriod = trackingCfg.TickPeriod
		}
		if trackingCfg.LocateTimeout > 0 {
			locateTimeout = trackingCfg.LocateTimeout
		}
	}

	return &trackingService{
		convoyRepo:    convoyRepo,
		rosterRepo:    rosterRepo,
		headcountUC:   headcountUC,
		locator:       locator,
		logger:        logger,
		tickPeriod:    tickPeriod,
		locateTimeout: locateTimeout,
		thresholds:    newTrendThresholds(trackingCfg),
		states:        make(map[string]*entity.DistanceState),
		// Assume the feed exists until the capability check says otherwise.
		feedAvailable: true,
		subs:          make(map[int]chan *entity.TrackingTick),
		stopCh:        make(chan struct{}),
	}
}

// Run drives the polling loop: one tick immediately, then one per period.
// A tick runs to completion — remote calls settled — before the next one
// may start; ticker fires that arrive while a tick is still running are
// simply dropped.
func (s *trackingService) Run(ctx context.Context) error {
	s.runTick(ctx)

	ticker := time.NewTicker(s.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

// Stop tears the loop down without aborting in-flight calls; a tick already
// running publishes into a torn-down subscriber set, where its result is
// discarded.
func (s *trackingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Latest returns the most recently published tick.
func (s *trackingService) Latest() *entity.TrackingTick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}

// Subscribe registers a tick consumer. A consumer that falls behind misses
// ticks rather than blocking the loop.
func (s *trackingService) Subscribe(buffer int) (<-chan *entity.TrackingTick, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan *entity.TrackingTick, buffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// runTick executes one full polling cycle: locate, query, reconcile,
// classify, aggregate, publish.
func (s *trackingService) runTick(ctx context.Context) {
	s.refreshOrigin(ctx)

	active, activeErr := s.convoyRepo.FindActiveConvoys(ctx)
	planned, plannedErr := s.convoyRepo.FindPlannedConvoys(ctx)
	if activeErr != nil || plannedErr != nil {
		// The tick's primary queries failed: carry the previous data over and
		// surface the "could not refresh" banner. Classifier state is left
		// untouched so a transient outage does not evict it.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Convoy refresh failed",
			slog.Any("activeError", activeErr),
			slog.Any("plannedError", plannedErr),
		)
		s.publishRefreshFailure()

		return
	}

	s.checkPositionFeed(ctx, active)

	reports := s.fetchPositionReports(ctx, active)
	reportsByConvoy := make(map[string][]*entity.MemberPositionReport, len(active))
	for _, report := range reports {
		reportsByConvoy[report.ConvoyID] = append(reportsByConvoy[report.ConvoyID], report)
	}

	ids := make([]string, 0, len(active)+len(planned))
	for _, convoy := range active {
		ids = append(ids, convoy.ID)
	}
	for _, convoy := range planned {
		ids = append(ids, convoy.ID)
	}
	headcounts := s.headcountUC.Resolve(ctx, ids)

	activeViews := make([]*entity.ConvoyView, 0, len(active))
	nextStates := make(map[string]*entity.DistanceState, len(active))
	for _, convoy := range active {
		view := &entity.ConvoyView{
			Convoy:    convoy,
			Trend:     entity.TrendUnknown,
			Headcount: headcounts[convoy.ID],
		}

		position := reconcileLeaderPosition(convoy, reportsByConvoy[convoy.ID])
		view.Position = position

		if position != nil && s.origin != nil {
			d := distanceKm(*s.origin, position.Position)
			bearing := bearingDeg(*s.origin, position.Position)
			view.DistanceKm = &d
			view.BearingDeg = &bearing

			state := applyDistanceSample(s.states[convoy.ID], d, s.thresholds)
			nextStates[convoy.ID] = state
			view.Trend = state.Trend
		} else if previous, ok := s.states[convoy.ID]; ok {
			// No sample this tick: the state carries over unchanged.
			nextStates[convoy.ID] = previous
			view.Trend = previous.Trend
		}

		activeViews = append(activeViews, view)
	}
	// Convoys that left the active set drop their classifier state here.
	s.states = nextStates

	plannedViews := make([]*entity.ConvoyView, 0, len(planned))
	for _, convoy := range planned {
		view := &entity.ConvoyView{
			Convoy:    convoy,
			Trend:     entity.TrendUnknown,
			Headcount: headcounts[convoy.ID],
		}
		// Planned convoys only carry the convoy-level position; they get a
		// distance when one is known but never a trend.
		if convoy.RawLeaderPosition != nil {
			position := *convoy.RawLeaderPosition
			view.Position = &position
			if s.origin != nil {
				d := distanceKm(*s.origin, position.Position)
				bearing := bearingDeg(*s.origin, position.Position)
				view.DistanceKm = &d
				view.BearingDeg = &bearing
			}
		}
		plannedViews = append(plannedViews, view)
	}

	tick := &entity.TrackingTick{
		Ticked:                time.Now(),
		Active:                activeViews,
		Planned:               plannedViews,
		PositionFeedAvailable: s.feedAvailable,
	}
	if s.origin != nil {
		origin := *s.origin
		tick.Origin = &origin
	}

	s.publish(tick)
}

// refreshOrigin asks the device locator for the merchant's own position,
// best effort: a failure or timeout keeps the previous origin in place
// rather than clearing it.
func (s *trackingService) refreshOrigin(ctx context.Context) {
	locateCtx, cancel := context.WithTimeout(ctx, s.locateTimeout)
	defer cancel()

	position, err := s.locator.Locate(locateCtx)
	if err != nil || position == nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "Device locate failed, keeping previous origin",
			slog.Any("error", err),
		)

		return
	}

	s.origin = position
}

// checkPositionFeed runs the capability check once per session. When the
// convoy source lacks the live-position fields entirely, proximity data
// stays unknown while the rest of the dashboard keeps working.
func (s *trackingService) checkPositionFeed(ctx context.Context, active []*entity.ConvoySnapshot) {
	if s.feedChecked || len(active) == 0 {
		return
	}

	available, err := s.convoyRepo.HasLivePositionFeed(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Position feed capability check failed",
			slog.Any("error", err),
		)

		return
	}

	s.feedChecked = true
	s.feedAvailable = available
	if !available {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Convoy source has no live-position fields, proximity data unavailable")
	}
}

func (s *trackingService) fetchPositionReports(ctx context.Context, active []*entity.ConvoySnapshot) []*entity.MemberPositionReport {
	if !s.feedAvailable || len(active) == 0 {
		return nil
	}

	ids := make([]string, 0, len(active))
	for _, convoy := range active {
		ids = append(ids, convoy.ID)
	}

	reports, err := s.rosterRepo.FindPositionReports(ctx, ids)
	if err != nil {
		// Reconciliation still runs on the convoy-level feed alone.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Position report query failed",
			slog.Any("error", err),
		)

		return nil
	}

	return reports
}

// publishRefreshFailure re-publishes the previous tick's data flagged as
// stale.
func (s *trackingService) publishRefreshFailure() {
	tick := &entity.TrackingTick{
		Ticked:                time.Now(),
		PositionFeedAvailable: s.feedAvailable,
		RefreshFailed:         true,
	}

	s.mu.RLock()
	previous := s.latest
	s.mu.RUnlock()
	if previous != nil {
		tick.Origin = previous.Origin
		tick.Active = previous.Active
		tick.Planned = previous.Planned
	}

	s.publish(tick)
}

func (s *trackingService) publish(tick *entity.TrackingTick) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = tick
	for _, sub := range s.subs {
		select {
		case sub <- tick:
		default:
			// Slow consumer: this tick is dropped for it.
		}
	}
}
