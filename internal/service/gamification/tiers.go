package gamification

// TierType separates the two reward tracks.
type TierType string

const (
	TierHydration TierType = "hydration"
	TierTask      TierType = "task"
)

// Tier is one achievement level. Image is an object storage key the
// client resolves through the media endpoints.
type Tier struct {
	Threshold int    `json:"threshold"`
	Name      string `json:"name"`
	Image     string `json:"image"`
}

// TierTable is an ordered list of tiers with strictly increasing
// thresholds. The first entry has threshold 0 and is the base tier,
// which never produces an unlock.
type TierTable []Tier

// Current returns the last tier whose threshold does not exceed counter.
// Counters are non-negative, so the base tier always qualifies.
func (tt TierTable) Current(counter int) Tier {
	current := tt[0]
	for _, tier := range tt[1:] {
		if tier.Threshold > counter {
			break
		}
		current = tier
	}
	return current
}

// HydrationTiers is keyed on total days the hydration goal was met.
var HydrationTiers = TierTable{
	{Threshold: 0, Name: "droplet", Image: "pins/hydration/droplet.png"},
	{Threshold: 7, Name: "stream", Image: "pins/hydration/stream.png"},
	{Threshold: 21, Name: "river", Image: "pins/hydration/river.png"},
	{Threshold: 50, Name: "waterfall", Image: "pins/hydration/waterfall.png"},
	{Threshold: 100, Name: "ocean", Image: "pins/hydration/ocean.png"},
}

// TaskTiers is keyed on completed five-day weekly streaks.
var TaskTiers = TierTable{
	{Threshold: 0, Name: "seed", Image: "pins/task/seed.png"},
	{Threshold: 1, Name: "sprout", Image: "pins/task/sprout.png"},
	{Threshold: 3, Name: "sapling", Image: "pins/task/sapling.png"},
	{Threshold: 6, Name: "tree", Image: "pins/task/tree.png"},
	{Threshold: 12, Name: "orchard", Image: "pins/task/orchard.png"},
}
