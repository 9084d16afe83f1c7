package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/command"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/quest"
	"github.com/cory-johannsen/wayfarer/internal/game/ruleset"
	"github.com/cory-johannsen/wayfarer/internal/game/session"
	"github.com/cory-johannsen/wayfarer/internal/game/world"
)

// healthBarWidth is the number of cells in a monster health bar.
const healthBarWidth = 20

// categoryLabels maps command categories to help headings.
var categoryLabels = map[string]string{
	command.CategoryMovement:  "Movement",
	command.CategoryWorld:     "World",
	command.CategoryCombat:    "Combat",
	command.CategoryCharacter: "Character",
	command.CategorySystem:    "System",
}

// Renderer formats game results as styled text. Every method returns the text
// without a trailing newline.
type Renderer struct {
	st Styles
}

// NewRenderer creates a Renderer using st.
func NewRenderer(st Styles) *Renderer {
	return &Renderer{st: st}
}

// Zone renders the zone view: title, description, exits, NPCs, and monsters,
// with NPCs and monsters numbered for talk and fight.
func (r *Renderer) Zone(z *world.Zone) string {
	var b strings.Builder
	b.WriteString(r.st.Title.Render(fmt.Sprintf("%s [%d]", z.Name, z.ID)))
	b.WriteString("\n")
	if z.Description != "" {
		b.WriteString(r.st.Description.Render(z.Description))
		b.WriteString("\n")
	}

	if len(z.Exits) == 0 {
		b.WriteString(r.st.Dim.Render("There is no way out."))
	} else {
		exits := make([]string, 0, len(z.Exits))
		for _, e := range z.Exits {
			exits = append(exits, r.st.Exit.Render(e.Title()))
		}
		b.WriteString(r.st.Heading.Render("Exits: "))
		b.WriteString(strings.Join(exits, ", "))
	}

	if len(z.NPCs) > 0 {
		b.WriteString("\n")
		b.WriteString(r.st.Heading.Render("People here:"))
		for i, n := range z.NPCs {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("  %s %s", r.st.Number.Render(fmt.Sprintf("%d.", i+1)), r.st.NPC.Render(n.Name)))
			if n.Description != "" {
				b.WriteString(r.st.Dim.Render(" - " + n.Description))
			}
		}
	}

	if len(z.Monsters) > 0 {
		b.WriteString("\n")
		b.WriteString(r.st.Heading.Render("Monsters:"))
		for i := range z.Monsters {
			m := &z.Monsters[i]
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("  %s %s %s",
				r.st.Number.Render(fmt.Sprintf("%d.", i+1)),
				r.st.Monster.Render(m.Name),
				r.healthBar(m),
			))
			if m.Description != "" {
				b.WriteString("\n     ")
				b.WriteString(r.st.Dim.Render(m.Description))
			}
		}
	}
	return b.String()
}

func (r *Renderer) healthBar(m *npc.Monster) string {
	pct := m.HealthPercent()
	return r.st.Health(pct).Render(m.HealthBar(healthBarWidth)) +
		r.st.Dim.Render(fmt.Sprintf(" %d/%d %s", m.CurrentHealth, m.MaxHealth, m.HealthDescription()))
}

// Move renders a move attempt. A successful move shows the new zone.
func (r *Renderer) Move(res session.MoveResult) string {
	if res.Blocked {
		return r.st.Warning.Render(fmt.Sprintf("You cannot go %s from here.", res.Direction))
	}
	return r.st.Info.Render(fmt.Sprintf("You walk %s.", res.Direction)) + "\n\n" + r.Zone(res.To)
}

// Talk renders an NPC conversation and its quest outcomes.
func (r *Renderer) Talk(res session.TalkResult) string {
	lines := []string{r.st.NPC.Render(res.Greeting)}
	if res.Quests.NothingToOffer {
		lines = append(lines, r.st.Dim.Render(fmt.Sprintf("%s has nothing more for you.", res.NPC.Name)))
		return strings.Join(lines, "\n")
	}
	for _, q := range res.Quests.Results {
		lines = append(lines, r.questResult(q))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) questResult(res quest.Result) string {
	if res.Status == quest.StatusOpen {
		return r.st.Heading.Render("Quest: "+res.Quest.Name) + "\n  " + r.st.Info.Render(res.Hint())
	}
	out := r.st.Success.Render(fmt.Sprintf("Quest complete: %s", res.Quest.Name))
	if res.Consumed != nil {
		out += "\n  " + r.st.Dim.Render(fmt.Sprintf("You hand over %s.", res.Consumed.Name))
	}
	if res.Reward != nil {
		out += "\n  " + r.st.Success.Render(fmt.Sprintf("Reward: %d gold, %d experience.", res.Reward.Gold, res.Reward.Experience))
	}
	return out
}

// EncounterStart announces a fight.
func (r *Renderer) EncounterStart(enc *combat.Encounter) string {
	return r.st.Monster.Render(fmt.Sprintf("You face %s!", enc.Monster.Name)) + " " + r.healthBar(&enc.Monster)
}

// Round renders the narrative of one resolved round.
func (r *Renderer) Round(ev combat.RoundEvent) string {
	header := r.st.Dim.Render(fmt.Sprintf("-- round %d --", ev.Round))
	lines := []string{header}
	for _, line := range ev.Narrative() {
		lines = append(lines, r.st.Info.Render(line))
	}
	return strings.Join(lines, "\n")
}

// CombatStatus shows both fighters' health before the player chooses.
func (r *Renderer) CombatStatus(enc *combat.Encounter) string {
	p := enc.Player
	return fmt.Sprintf("%s %d/%d   %s %s",
		r.st.Prompt.Render(p.Name), p.CurrentHealth, p.MaxHealth(),
		r.st.Monster.Render(enc.Monster.Name), r.healthBar(&enc.Monster),
	)
}

// EncounterEnd renders the outcome of a finished encounter.
func (r *Renderer) EncounterEnd(enc *combat.Encounter) string {
	switch enc.State {
	case combat.StateMonsterDefeated:
		lines := []string{r.st.Success.Render(fmt.Sprintf("Victory over %s!", enc.Monster.Name))}
		if rw := enc.Reward; rw != nil {
			lines = append(lines, r.st.Info.Render(fmt.Sprintf("You have defeated %d %s so far.", rw.Kills, rw.MonsterName)))
			if rw.Experience > 0 {
				lines = append(lines, r.st.Info.Render(fmt.Sprintf("Experience earned: %d", rw.Experience)))
			}
			for _, it := range rw.Items {
				lines = append(lines, r.st.Item.Render(fmt.Sprintf("Loot: %s", it.Name)))
			}
		}
		return strings.Join(lines, "\n")
	case combat.StatePlayerDefeated:
		return r.st.Error.Render(fmt.Sprintf("You wake up back in zone %d with %d health.", enc.Player.ZoneID, enc.Player.CurrentHealth))
	case combat.StateFled:
		return r.st.Warning.Render(fmt.Sprintf("You escaped from %s.", enc.Monster.Name))
	default:
		return r.st.Dim.Render("The fight was interrupted.")
	}
}

// Inventory renders the numbered backpack contents.
func (r *Renderer) Inventory(items []inventory.Item) string {
	if len(items) == 0 {
		return r.st.Dim.Render("Your backpack is empty.")
	}
	lines := []string{r.st.Heading.Render("Backpack:")}
	for i, it := range items {
		line := fmt.Sprintf("  %s %s %s",
			r.st.Number.Render(fmt.Sprintf("%d.", i+1)),
			r.st.Item.Render(it.Name),
			r.st.Dim.Render(fmt.Sprintf("(%s)", it.Type)),
		)
		if !it.Stats.IsZero() {
			line += " " + r.st.Info.Render(it.Stats.String())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Equip renders a successful equip.
func (r *Renderer) Equip(res character.EquipResult) string {
	out := r.st.Success.Render(fmt.Sprintf("You equip %s as your %s.", res.Item.Name, strings.ToLower(inventory.SlotDisplayName(res.Slot))))
	if res.Displaced != nil {
		out += "\n" + r.st.Dim.Render(fmt.Sprintf("%s goes back into your backpack.", res.Displaced.Name))
	}
	return out
}

// Unequip renders an item returned to the backpack.
func (r *Renderer) Unequip(it inventory.Item) string {
	return r.st.Success.Render(fmt.Sprintf("You put %s back in your backpack.", it.Name))
}

// Use renders a consumed item.
func (r *Renderer) Use(res character.UseResult, health, maxHealth int) string {
	if res.NoEffect {
		return r.st.Warning.Render(fmt.Sprintf("%s has no effect. You keep it.", res.Item.Name))
	}
	return r.st.Success.Render(fmt.Sprintf("You use %s and recover %d health (%d/%d).", res.Item.Name, res.Healed, health, maxHealth))
}

// Summary renders the character sheet inside a bordered box.
func (r *Renderer) Summary(sum session.Summary) string {
	lines := []string{
		r.st.Title.Render(sum.Name),
		fmt.Sprintf("Health   %d/%d", sum.Health, sum.MaxHealth),
		fmt.Sprintf("Strength %d (%d base %+d)", sum.Total.Strength, sum.Base.Strength, sum.Bonus.Strength),
		fmt.Sprintf("Defense  %d (%d base %+d)", sum.Total.Defense, sum.Base.Defense, sum.Bonus.Defense),
		fmt.Sprintf("Agility  %d (%d base %+d)", sum.Total.Agility, sum.Base.Agility, sum.Bonus.Agility),
	}
	zone := fmt.Sprintf("zone %d", sum.ZoneID)
	if sum.ZoneName != "" {
		zone = fmt.Sprintf("%s [%d]", sum.ZoneName, sum.ZoneID)
	}
	lines = append(lines, "Location "+zone, "", r.st.Heading.Render("Equipment"))
	for _, slot := range inventory.Slots {
		name := r.st.Dim.Render("empty")
		if it := sum.Equipment[slot]; it != nil {
			name = r.st.Item.Render(it.Name) + " " + r.st.Dim.Render(it.Stats.String())
		}
		lines = append(lines, fmt.Sprintf("  %-7s %s", inventory.SlotDisplayName(slot), name))
	}
	lines = append(lines, "", r.st.Heading.Render("Kills"))
	if len(sum.Kills) == 0 {
		lines = append(lines, r.st.Dim.Render("  none yet"))
	}
	for _, k := range sum.Kills {
		lines = append(lines, fmt.Sprintf("  %s x%d", k.Name, k.Count))
	}
	return r.st.Sheet.Render(strings.Join(lines, "\n"))
}

// Help lists the registry's commands by category.
func (r *Renderer) Help(reg *command.Registry) string {
	lines := []string{r.st.Title.Render("Commands")}
	byCategory := reg.CommandsByCategory()
	for _, cat := range command.CategoryOrder {
		cmds := byCategory[cat]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, r.st.Heading.Render(categoryLabels[cat]+":"))
		for _, cmd := range cmds {
			aliases := ""
			if len(cmd.Aliases) > 0 {
				aliases = r.st.Dim.Render(" (" + strings.Join(cmd.Aliases, ", ") + ")")
			}
			lines = append(lines, fmt.Sprintf("  %s%s  %s", r.st.Exit.Render(fmt.Sprintf("%-16s", cmd.Synopsis())), aliases, cmd.Help))
		}
	}
	return strings.Join(lines, "\n")
}

// Profiles lists the character profiles for selection.
func (r *Renderer) Profiles(profiles []*ruleset.Profile) string {
	lines := []string{r.st.Heading.Render("Choose your profile:")}
	for i, p := range profiles {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			r.st.Number.Render(fmt.Sprintf("%d.", i+1)),
			r.st.Title.Render(p.Name),
			r.st.Dim.Render(fmt.Sprintf("(HP %d, STR %d, DEF %d, AGI %d)", p.Stats.Health, p.Stats.Strength, p.Stats.Defense, p.Stats.Agility)),
		))
		if p.Description != "" {
			lines = append(lines, "     "+r.st.Description.Render(p.Description))
		}
	}
	return strings.Join(lines, "\n")
}

// Error renders a message for a failed intent.
func (r *Renderer) Error(msg string) string {
	return r.st.Error.Render(msg)
}

// Info renders a plain informational message.
func (r *Renderer) Info(msg string) string {
	return r.st.Info.Render(msg)
}

// Prompt renders the command prompt for the player.
func (r *Renderer) Prompt(name string) string {
	return r.st.Prompt.Render(fmt.Sprintf("[%s]> ", name))
}
