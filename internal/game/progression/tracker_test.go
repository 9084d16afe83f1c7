package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
)

func newTracker(t *testing.T) *progression.Tracker {
	t.Helper()
	items, err := inventory.NewCatalog([]inventory.Item{
		{ID: 1, Name: "Health Potion", Type: inventory.TypeConsumable, Usable: true},
		{ID: 3, Name: "Wolf Pelt", Type: inventory.TypeOther},
	})
	require.NoError(t, err)
	return progression.NewTracker(items, zaptest.NewLogger(t))
}

func TestRecordVictory(t *testing.T) {
	tr := newTracker(t)
	p := &character.Player{Name: "Aria"}
	wolf := npc.Monster{ID: 2, Name: "Wolf", Loot: []int{3, 404, 1}, Experience: 20}

	reward := tr.RecordVictory(p, &wolf)
	assert.Equal(t, 2, reward.MonsterID)
	assert.Equal(t, "Wolf", reward.MonsterName)
	assert.Equal(t, 20, reward.Experience)
	assert.Equal(t, 1, reward.Kills)
	require.Len(t, reward.Items, 2, "unknown loot ids are skipped")
	assert.Equal(t, 2, p.Inventory.Len())
	assert.Equal(t, 1, p.KillCount(2))

	again := tr.RecordVictory(p, &wolf)
	assert.Equal(t, 2, again.Kills)
	assert.Equal(t, 4, p.Inventory.Len())
}

func TestRecordVictory_KillCountMonotonic_Property(t *testing.T) {
	tr := newTracker(t)
	rapid.Check(t, func(rt *rapid.T) {
		p := &character.Player{}
		wins := rapid.SliceOfN(rapid.IntRange(1, 5), 0, 30).Draw(rt, "wins")
		expected := map[int]int{}
		for _, id := range wins {
			before := p.KillCount(id)
			tr.RecordVictory(p, &npc.Monster{ID: id, Name: "m"})
			assert.Equal(rt, before+1, p.KillCount(id))
			expected[id]++
		}
		for id, n := range expected {
			assert.Equal(rt, n, p.KillCount(id))
		}
	})
}

func TestKills_NamedAndOrdered(t *testing.T) {
	p := &character.Player{Kills: map[int]int{5: 1, 2: 3, 9: 2}}
	got := progression.Kills(p, map[int]string{2: "Wolf", 5: "Goblin"})
	require.Len(t, got, 2)
	assert.Equal(t, progression.KillSummary{MonsterID: 2, Name: "Wolf", Count: 3}, got[0])
	assert.Equal(t, progression.KillSummary{MonsterID: 5, Name: "Goblin", Count: 1}, got[1])
}

func TestKills_AlwaysSortedByMonsterID(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kills := rapid.MapOf(rapid.IntRange(1, 200), rapid.IntRange(1, 50)).Draw(rt, "kills")
		names := make(map[int]string, len(kills))
		for id := range kills {
			names[id] = "m"
		}
		got := progression.Kills(&character.Player{Kills: kills}, names)
		require.Len(rt, got, len(kills))
		for i := 1; i < len(got); i++ {
			assert.Less(rt, got[i-1].MonsterID, got[i].MonsterID)
		}
	})
}
