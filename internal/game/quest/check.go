package quest

import (
	"fmt"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
)

// Status is the outcome of checking one quest.
type Status int

const (
	// StatusOpen means the quest's requirement is not met yet.
	StatusOpen Status = iota
	// StatusCompleted means the quest was completed by this check.
	StatusCompleted
)

// String returns "open" or "completed".
func (s Status) String() string {
	if s == StatusCompleted {
		return "completed"
	}
	return "open"
}

// Reward is what the player is told they receive for an item quest.
type Reward struct {
	Gold       int
	Experience int
}

// ItemQuestReward is the fixed reward announced for handing over a required item.
var ItemQuestReward = Reward{Gold: 50, Experience: 25}

// Result reports what happened to one quest during a Check.
type Result struct {
	Quest  Quest
	Status Status
	// RequiredItemName is the display name of the required item, empty when
	// the quest needs no item or the name cannot be resolved.
	RequiredItemName string
	// Consumed is the item taken from the backpack, nil if none was.
	Consumed *inventory.Item
	// Reward is set only when an item was handed over.
	Reward *Reward
}

// Hint returns the message shown for an open quest: the required item's name
// when it is known, the quest description otherwise.
func (r Result) Hint() string {
	if r.RequiredItemName != "" {
		return fmt.Sprintf("Bring me %s to finish this quest.", r.RequiredItemName)
	}
	return r.Quest.Description
}

// Interaction is the full outcome of checking an NPC's quests.
type Interaction struct {
	Results []Result
	// NothingToOffer is true when, before checking, there was no incomplete quest.
	NothingToOffer bool
}

// Completed returns the results with StatusCompleted.
func (in Interaction) Completed() []Result {
	var out []Result
	for _, r := range in.Results {
		if r.Status == StatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

// HasOpen reports whether any quest in quests is still incomplete.
func HasOpen(quests []Quest) bool {
	for _, q := range quests {
		if !q.Completed {
			return true
		}
	}
	return false
}

// Check evaluates every incomplete quest in order against bag.
//
// A quest with no required item completes. A quest whose item is in bag
// completes, and the first matching entry is removed from bag. Otherwise the
// quest stays open. Completion is written back into quests[i].Completed, so a
// later Check skips it.
//
// Precondition: bag must be non-nil; items may be nil.
// Postcondition: bag shrinks by exactly the number of item quests completed.
func Check(quests []Quest, bag *inventory.Backpack, items *inventory.Catalog) Interaction {
	in := Interaction{NothingToOffer: !HasOpen(quests)}
	for i := range quests {
		q := &quests[i]
		if q.Completed {
			continue
		}
		res := Result{}
		if q.RequiredItemID != nil && items != nil {
			res.RequiredItemName = items.Name(*q.RequiredItemID)
		}
		if q.RequiredItemID == nil {
			q.Completed = true
			res.Status = StatusCompleted
		} else if it, ok := bag.RemoveFirst(*q.RequiredItemID); ok {
			q.Completed = true
			reward := ItemQuestReward
			res.Status = StatusCompleted
			res.Consumed = &it
			res.Reward = &reward
			if res.RequiredItemName == "" {
				res.RequiredItemName = it.Name
			}
		} else {
			res.Status = StatusOpen
		}
		res.Quest = q.Clone()
		in.Results = append(in.Results, res)
	}
	return in
}
