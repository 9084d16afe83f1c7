package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/quest"
)

func intPtr(v int) *int { return &v }

func relic() inventory.Item {
	return inventory.Item{ID: 42, Name: "Ancient Relic", Type: inventory.TypeQuestItem}
}

func catalog(t testing.TB) *inventory.Catalog {
	t.Helper()
	c, err := inventory.NewCatalog([]inventory.Item{relic()})
	require.NoError(t, err)
	return c
}

func TestCheck_RequiredItemFlow(t *testing.T) {
	quests := []quest.Quest{{ID: 1, Name: "Lost Relic", Description: "Find the relic.", RequiredItemID: intPtr(42)}}
	bag := inventory.NewBackpack()
	items := catalog(t)

	first := quest.Check(quests, bag, items)
	assert.False(t, first.NothingToOffer)
	require.Len(t, first.Results, 1)
	assert.Equal(t, quest.StatusOpen, first.Results[0].Status)
	assert.Equal(t, "Ancient Relic", first.Results[0].RequiredItemName)
	assert.Equal(t, "Bring me Ancient Relic to finish this quest.", first.Results[0].Hint())
	assert.False(t, quests[0].Completed)

	bag.Add(relic())
	bag.Add(relic())
	second := quest.Check(quests, bag, items)
	require.Len(t, second.Results, 1)
	res := second.Results[0]
	assert.Equal(t, quest.StatusCompleted, res.Status)
	require.NotNil(t, res.Consumed)
	assert.Equal(t, 42, res.Consumed.ID)
	require.NotNil(t, res.Reward)
	assert.Equal(t, quest.Reward{Gold: 50, Experience: 25}, *res.Reward)
	assert.Equal(t, 1, bag.Len(), "exactly one copy of item 42 must be consumed")
	assert.True(t, quests[0].Completed)

	third := quest.Check(quests, bag, items)
	assert.True(t, third.NothingToOffer)
	assert.Empty(t, third.Results)
	assert.Equal(t, 1, bag.Len(), "a completed quest must not consume again")
}

func TestCheck_NoRequiredItemCompletesOnContact(t *testing.T) {
	quests := []quest.Quest{{ID: 2, Name: "Say Hello"}}
	in := quest.Check(quests, inventory.NewBackpack(), nil)
	assert.False(t, in.NothingToOffer)
	require.Len(t, in.Results, 1)
	assert.Equal(t, quest.StatusCompleted, in.Results[0].Status)
	assert.Nil(t, in.Results[0].Reward, "quests without items carry no item reward")
	assert.True(t, quests[0].Completed)
	assert.Len(t, in.Completed(), 1)
}

func TestCheck_UnknownItemFallsBackToDescription(t *testing.T) {
	quests := []quest.Quest{{ID: 3, Name: "Mystery", Description: "Bring the thing.", RequiredItemID: intPtr(77)}}
	in := quest.Check(quests, inventory.NewBackpack(), catalog(t))
	require.Len(t, in.Results, 1)
	assert.Equal(t, "", in.Results[0].RequiredItemName)
	assert.Equal(t, "Bring the thing.", in.Results[0].Hint())
}

func TestCheck_NothingToOffer(t *testing.T) {
	assert.True(t, quest.Check(nil, inventory.NewBackpack(), nil).NothingToOffer)
	done := []quest.Quest{{ID: 1, Name: "Done", Completed: true}}
	assert.True(t, quest.Check(done, inventory.NewBackpack(), nil).NothingToOffer)
}

func TestCheck_SkipsCompleted(t *testing.T) {
	quests := []quest.Quest{
		{ID: 1, Name: "Done", RequiredItemID: intPtr(42), Completed: true},
		{ID: 2, Name: "Pending", RequiredItemID: intPtr(42)},
	}
	bag := inventory.NewBackpack(relic())
	in := quest.Check(quests, bag, catalog(t))
	require.Len(t, in.Results, 1)
	assert.Equal(t, 2, in.Results[0].Quest.ID)
	assert.Equal(t, 0, bag.Len())
}

func TestCheck_ResultQuestIsSnapshot(t *testing.T) {
	quests := []quest.Quest{{ID: 1, Name: "Relic", RequiredItemID: intPtr(42)}}
	in := quest.Check(quests, inventory.NewBackpack(), nil)
	*in.Results[0].Quest.RequiredItemID = 7
	assert.Equal(t, 42, *quests[0].RequiredItemID)
}

func TestCheck_ConsumesOnlyForCompletedItemQuests_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "quests")
		quests := make([]quest.Quest, n)
		for i := range quests {
			quests[i] = quest.Quest{ID: i + 1, Name: "q"}
			if rapid.Bool().Draw(rt, "needsItem") {
				quests[i].RequiredItemID = intPtr(rapid.IntRange(1, 4).Draw(rt, "item"))
			}
			quests[i].Completed = rapid.Bool().Draw(rt, "completed")
		}
		bag := inventory.NewBackpack()
		for _, id := range rapid.SliceOfN(rapid.IntRange(1, 4), 0, 6).Draw(rt, "bag") {
			bag.Add(inventory.Item{ID: id, Name: "x", Type: inventory.TypeQuestItem})
		}
		before := bag.Len()
		in := quest.Check(quests, bag, nil)

		consumed := 0
		for _, r := range in.Results {
			if r.Consumed != nil {
				consumed++
			}
		}
		assert.Equal(rt, before-consumed, bag.Len())
		for _, q := range quests {
			if q.RequiredItemID == nil {
				assert.True(rt, q.Completed, "item-less quests always complete")
			}
		}
		again := quest.Check(quests, bag, nil)
		for _, r := range again.Results {
			assert.Equal(rt, quest.StatusOpen, r.Status, "only still-open quests are re-evaluated")
		}
	})
}
