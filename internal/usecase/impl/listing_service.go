package impl

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"
	"convoytrack/internal/usecase"
)

// Proximity-filter defaults, used when the radius config is missing or the
// merchant supplies an out-of-range value (user input is clamped, never
// rejected).
const (
	defaultRadiusKm    = 25.0
	defaultMaxRadiusKm = 200.0
)

type listingService struct {
	defaultRadiusKm float64
	maxRadiusKm     float64
}

// NewListingService creates a new listing service instance
func NewListingService(cfg *config.Config) usecase.ListingUsecase {
	svc := &listingService{
		defaultRadiusKm: defaultRadiusKm,
		maxRadiusKm:     defaultMaxRadiusKm,
	}
	if cfg != nil && cfg.Tracking != nil {
		if cfg.Tracking.DefaultRadiusKm > 0 {
			svc.defaultRadiusKm = cfg.Tracking.DefaultRadiusKm
		}
		if cfg.Tracking.MaxRadiusKm > 0 {
			svc.maxRadiusKm = cfg.Tracking.MaxRadiusKm
		}
	}

	return svc
}

// ListConvoys applies the filter configuration and the named sort mode to
// one of the tick's convoy lists. The input tick is never mutated.
func (s *listingService) ListConvoys(tick *entity.TrackingTick, kind usecase.ConvoyListKind, filter usecase.ConvoyFilter, mode usecase.SortMode) []*entity.ConvoyView {
	if tick == nil {
		return nil
	}

	source := tick.Active
	if kind == usecase.ConvoyListPlanned {
		source = tick.Planned
	}

	radius := s.clampRadius(filter.RadiusKm)

	out := make([]*entity.ConvoyView, 0, len(source))
	for _, view := range source {
		if !matchesConvoy(view, filter, radius) {
			continue
		}
		out = append(out, view)
	}

	slices.SortStableFunc(out, convoyComparator(kind, mode))

	return out
}

func (s *listingService) clampRadius(radiusKm *float64) *float64 {
	if radiusKm == nil {
		return nil
	}

	radius := *radiusKm
	if radius <= 0 {
		radius = s.defaultRadiusKm
	}
	if radius > s.maxRadiusKm {
		radius = s.maxRadiusKm
	}

	return &radius
}

func matchesConvoy(view *entity.ConvoyView, filter usecase.ConvoyFilter, radiusKm *float64) bool {
	convoy := view.Convoy

	if filter.Category != "" && foldText(convoy.Category) != foldText(filter.Category) {
		return false
	}

	if filter.Search != "" {
		needle := foldText(filter.Search)
		if !strings.Contains(foldText(convoy.Name), needle) &&
			!strings.Contains(foldText(convoy.Description), needle) &&
			!strings.Contains(foldText(convoy.LeaderName), needle) {
			return false
		}
	}

	if filter.Route != "" {
		needle := foldText(filter.Route)
		if !strings.Contains(foldText(convoy.StartLocation), needle) &&
			!strings.Contains(foldText(convoy.EndLocation), needle) {
			return false
		}
	}

	if radiusKm != nil {
		// Unknown distance is never "in range".
		if view.DistanceKm == nil || *view.DistanceKm > *radiusKm {
			return false
		}
	}

	return true
}

// diacriticFolds maps the language-specific characters the source data mixes
// freely with their plain-ASCII spellings. Both sides of every comparison go
// through the same folding.
var diacriticFolds = map[rune]rune{
	'ı': 'i', 'İ': 'i', 'I': 'i',
	'ğ': 'g', 'Ğ': 'g',
	'ü': 'u', 'Ü': 'u',
	'ş': 's', 'Ş': 's',
	'ö': 'o', 'Ö': 'o',
	'ç': 'c', 'Ç': 'c',
}

func foldText(s string) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := diacriticFolds[r]; ok {
			return folded
		}

		return unicode.ToLower(r)
	}, s)
}

// convoyComparator returns the comparison function for a sort mode. Smart
// prefers distance for active lists and start time for planned ones;
// unrecognized modes fall back to smart.
func convoyComparator(kind usecase.ConvoyListKind, mode usecase.SortMode) func(a, b *entity.ConvoyView) int {
	switch mode {
	case usecase.SortClosest:
		return compareByDistance
	case usecase.SortHeadcount:
		return compareByHeadcount
	case usecase.SortStartTime:
		return compareByStartTime
	case usecase.SortRecent:
		return compareByRecency
	default:
		if kind == usecase.ConvoyListPlanned {
			return compareByStartTime
		}

		return compareByDistance
	}
}

// compareByDistance orders by ascending distance; convoys without a known
// distance sort last, secondarily by start time.
func compareByDistance(a, b *entity.ConvoyView) int {
	switch {
	case a.DistanceKm != nil && b.DistanceKm != nil:
		if c := cmp.Compare(*a.DistanceKm, *b.DistanceKm); c != 0 {
			return c
		}

		return compareByStartTime(a, b)
	case a.DistanceKm != nil:
		return -1
	case b.DistanceKm != nil:
		return 1
	default:
		return compareByStartTime(a, b)
	}
}

// compareByHeadcount orders by descending confirmed headcount, ties by
// ascending start time. Missing headcount counts as zero confirmed.
func compareByHeadcount(a, b *entity.ConvoyView) int {
	if c := cmp.Compare(confirmedOf(b), confirmedOf(a)); c != 0 {
		return c
	}

	return compareByStartTime(a, b)
}

func confirmedOf(view *entity.ConvoyView) int {
	if view.Headcount == nil {
		return 0
	}

	return view.Headcount.ConfirmedHeadcount
}

func compareByStartTime(a, b *entity.ConvoyView) int {
	return a.Convoy.StartTime.Compare(b.Convoy.StartTime)
}

func compareByRecency(a, b *entity.ConvoyView) int {
	return b.Convoy.CreatedAt.Compare(a.Convoy.CreatedAt)
}
