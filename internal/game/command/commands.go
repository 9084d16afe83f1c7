// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement  = "movement"
	CategoryWorld     = "world"
	CategoryCombat    = "combat"
	CategoryCharacter = "character"
	CategorySystem    = "system"
)

// CategoryOrder lists categories in help display order.
var CategoryOrder = []string{
	CategoryMovement,
	CategoryWorld,
	CategoryCombat,
	CategoryCharacter,
	CategorySystem,
}

// Handler identifiers mapping commands to session intents.
const (
	HandlerMove      = "move"
	HandlerGo        = "go"
	HandlerLook      = "look"
	HandlerTalk      = "talk"
	HandlerFight     = "fight"
	HandlerAttack    = "attack"
	HandlerFlee      = "flee"
	HandlerInventory = "inventory"
	HandlerUse       = "use"
	HandlerEquip     = "equip"
	HandlerUnequip   = "unequip"
	HandlerStats     = "stats"
	HandlerSave      = "save"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument shape, e.g. "talk <number>". Empty means Name.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command for the help listing.
	Category string
	// Handler names the session intent the command maps to.
	Handler string
}

// Synopsis returns Usage, or Name when the command takes no arguments.
func (c *Command) Synopsis() string {
	if c.Usage != "" {
		return c.Usage
	}
	return c.Name
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Walk north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Walk south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Walk east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Walk west", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "go", Aliases: []string{"walk"}, Usage: "go <direction>", Help: "Walk in a direction", Category: CategoryMovement, Handler: HandlerGo},

		// World commands
		{Name: "look", Aliases: []string{"l"}, Help: "Describe the current zone", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "talk", Aliases: []string{"t", "speak"}, Usage: "talk <number>", Help: "Talk to a character and hand in quests", Category: CategoryWorld, Handler: HandlerTalk},

		// Combat commands
		{Name: "fight", Aliases: []string{"f", "kill"}, Usage: "fight <number>", Help: "Start a fight with a monster", Category: CategoryCombat, Handler: HandlerFight},
		{Name: "attack", Aliases: []string{"a", "att"}, Help: "Attack the monster you are fighting", Category: CategoryCombat, Handler: HandlerAttack},
		{Name: "flee", Aliases: []string{"run"}, Help: "Run from the fight", Category: CategoryCombat, Handler: HandlerFlee},

		// Character commands
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show backpack contents", Category: CategoryCharacter, Handler: HandlerInventory},
		{Name: "use", Aliases: []string{"drink"}, Usage: "use <number>", Help: "Use a consumable from the backpack", Category: CategoryCharacter, Handler: HandlerUse},
		{Name: "equip", Aliases: []string{"eq", "wield", "wear"}, Usage: "equip <number>", Help: "Equip a backpack item", Category: CategoryCharacter, Handler: HandlerEquip},
		{Name: "unequip", Aliases: []string{"ueq", "remove"}, Usage: "unequip <slot>", Help: "Return a weapon, armor, or amulet to the backpack", Category: CategoryCharacter, Handler: HandlerUnequip},
		{Name: "stats", Aliases: []string{"sheet", "score"}, Help: "Show your character sheet", Category: CategoryCharacter, Handler: HandlerStats},

		// System commands
		{Name: "save", Aliases: nil, Help: "Save your progress", Category: CategorySystem, Handler: HandlerSave},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Save and leave the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsMovementCommand reports whether the command name is a movement direction.
func IsMovementCommand(name string) bool {
	switch name {
	case "north", "south", "east", "west":
		return true
	default:
		return false
	}
}
