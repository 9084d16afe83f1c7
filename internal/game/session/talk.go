package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/quest"
)

// TalkResult is what an NPC says and what happened to its quests.
type TalkResult struct {
	NPC      npc.NPC
	Greeting string
	Quests   quest.Interaction
}

// Talk greets the NPC with npcID in the current zone and checks its quests
// against the player's backpack. Completion is recorded on the zone's NPC,
// so a completed quest is never offered again in this world.
//
// Postcondition: Returns ErrNPCNotFound if the NPC is not in the current zone.
func (s *Session) Talk(npcID int) (TalkResult, error) {
	z, err := s.CurrentZone()
	if err != nil {
		return TalkResult{}, err
	}
	n, ok := z.NPC(npcID)
	if !ok {
		return TalkResult{}, fmt.Errorf("npc %d in zone %d: %w", npcID, z.ID, ErrNPCNotFound)
	}
	in := quest.Check(n.Quests, &s.player.Inventory, s.items)
	for _, r := range in.Completed() {
		fields := []zap.Field{
			zap.String("player", s.player.Name),
			zap.Int("npc", n.ID),
			zap.Int("quest", r.Quest.ID),
			zap.String("name", r.Quest.Name),
		}
		if r.Consumed != nil {
			fields = append(fields, zap.Int("consumed_item", r.Consumed.ID))
		}
		s.logger.Info("quest completed", fields...)
	}
	return TalkResult{NPC: n.Clone(), Greeting: n.Greeting(), Quests: in}, nil
}
