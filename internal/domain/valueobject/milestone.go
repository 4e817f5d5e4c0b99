package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// MilestoneID – one of the 8 fixed steps of the buyer journey
// ---------------------------------------------------------------------------

// MilestoneID identifies a journey step. IDs are fixed and ordered 1-8.
type MilestoneID int

const (
	MilestoneCreditCheck   MilestoneID = 1
	MilestoneSavingsPlan   MilestoneID = 2
	MilestonePreApproval   MilestoneID = 3
	MilestoneIncentives    MilestoneID = 4
	MilestoneNeighbourhood MilestoneID = 5
	MilestoneSearch        MilestoneID = 6
	MilestoneViewing       MilestoneID = 7
	MilestoneOffer         MilestoneID = 8
)

// MilestoneCount is the fixed number of journey steps.
const MilestoneCount = 8

var milestoneSlugs = map[MilestoneID]string{
	MilestoneCreditCheck:   "credit-check",
	MilestoneSavingsPlan:   "savings-plan",
	MilestonePreApproval:   "pre-approval",
	MilestoneIncentives:    "incentives",
	MilestoneNeighbourhood: "neighbourhood-research",
	MilestoneSearch:        "property-search",
	MilestoneViewing:       "viewing-booking",
	MilestoneOffer:         "make-offer",
}

// NewMilestoneID validates a raw integer milestone identifier.
func NewMilestoneID(n int) (MilestoneID, error) {
	id := MilestoneID(n)
	if _, ok := milestoneSlugs[id]; !ok {
		return 0, fmt.Errorf("invalid milestone id %d: must be 1-%d", n, MilestoneCount)
	}
	return id, nil
}

// Slug returns the stable string name for the milestone.
func (m MilestoneID) Slug() string { return milestoneSlugs[m] }

// Int returns the numeric identifier.
func (m MilestoneID) Int() int { return int(m) }

// AlwaysAvailable reports whether the milestone is reachable regardless of
// prior completion. Property search, viewing booking and offers (6-8) do not
// depend on the financial-readiness chain; milestone 1 opens the chain.
func (m MilestoneID) AlwaysAvailable() bool {
	return m == MilestoneCreditCheck || m >= MilestoneSearch
}

// AllMilestones returns the ordered list of the 8 milestone IDs.
func AllMilestones() []MilestoneID {
	ids := make([]MilestoneID, 0, MilestoneCount)
	for n := 1; n <= MilestoneCount; n++ {
		ids = append(ids, MilestoneID(n))
	}
	return ids
}
