package gen

import "github.com/vkbind/vkbind-go/pkg/registry"

// Level is the dispatch level of a command.
type Level uint8

const (
	// LevelInstance commands dispatch on an instance or nothing at all.
	LevelInstance Level = iota
	// LevelDevice commands dispatch on a device, queue or command buffer.
	LevelDevice
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInstance:
		return "instance"
	case LevelDevice:
		return "device"
	default:
		return "unknown"
	}
}

// deviceTypes are the first-parameter base types that make a command
// device-level.
var deviceTypes = map[string]bool{
	"VkDevice":        true,
	"VkCommandBuffer": true,
	"VkQueue":         true,
}

// Classify returns the dispatch level of a command.
func Classify(cmd registry.Command) Level {
	if len(cmd.Params) == 0 {
		return LevelInstance
	}
	if deviceTypes[cmd.Params[0].BaseType] {
		return LevelDevice
	}
	return LevelInstance
}

// ClassifiedCommand is a command together with its dispatch level.
type ClassifiedCommand struct {
	registry.Command
	Level Level
}

// CommandIndex looks up classified commands by source name. It is built
// once per run and is read-only afterwards.
type CommandIndex struct {
	byName map[string]ClassifiedCommand
}

// NewCommandIndex classifies and indexes commands. When a name repeats,
// the first command wins.
func NewCommandIndex(cmds []registry.Command) *CommandIndex {
	idx := &CommandIndex{byName: make(map[string]ClassifiedCommand, len(cmds))}
	for _, c := range cmds {
		if _, ok := idx.byName[c.Name]; ok {
			continue
		}
		idx.byName[c.Name] = ClassifiedCommand{Command: c, Level: Classify(c)}
	}
	return idx
}

// Lookup returns the command registered under name.
func (idx *CommandIndex) Lookup(name string) (ClassifiedCommand, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// Len returns the number of indexed commands.
func (idx *CommandIndex) Len() int {
	return len(idx.byName)
}
