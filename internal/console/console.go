package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"npc-arena/internal/config"
	"npc-arena/internal/domain"
	"npc-arena/internal/engine"
	"npc-arena/internal/infrastructure/storage"
	"npc-arena/pkg/api"
)

const helpText = `Commands:
  add <kind> <x> <y> [name]   add an NPC (kind: Robber|Elf|Bear or 1|2|3, 0 <= x,y <= 500)
  rename <index> [name]       rename the NPC at a roster position (from 0)
  list                        print all NPCs
  save [path]                 save NPCs to a file
  load [path]                 replace NPCs with the contents of a file
  battle [distance]           fight until nobody is in range
  help                        show this help
  quit                        exit`

// Console - построчный ввод оператора поверх Game.
// Ошибки печатаются и не прерывают сессию.
type Console struct {
	game *engine.Game
	cfg  config.Config
	out  io.Writer
}

func New(game *engine.Game, cfg config.Config, out io.Writer) *Console {
	return &Console{game: game, cfg: cfg, out: out}
}

// Run читает команды до EOF или quit
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := c.Execute(scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute выполняет одну команду. Возвращает true, если пора выходить.
func (c *Console) Execute(line string) bool {
	cmd, rest := nextToken(strings.TrimSuffix(line, "\r"))
	switch strings.ToLower(cmd) {
	case "":
		// пустая строка
	case "add":
		c.add(rest)
	case "rename":
		c.rename(rest)
	case "list":
		PrintRoster(c.out, c.game.Roster())
	case "save":
		c.save(pathOr(rest, c.cfg.SavePath))
	case "load":
		c.load(pathOr(rest, c.cfg.SavePath))
	case "battle":
		c.battle(rest)
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "quit", "exit":
		return true
	default:
		c.errorf("unknown command %q, type help", cmd)
	}
	return false
}

func (c *Console) add(args string) {
	kindTok, rest := nextToken(args)
	xTok, rest := nextToken(rest)
	yTok, name := nextToken(rest)

	kind, err := domain.ParseKindInput(kindTok)
	if err != nil {
		c.errorf("%v", err)
		return
	}
	x, errX := strconv.Atoi(xTok)
	y, errY := strconv.Atoi(yTok)
	if errX != nil || errY != nil {
		c.errorf("coordinates must be integers, got %q %q", xTok, yTok)
		return
	}

	if _, err := c.game.AddNPC(kind, x, y, name); err != nil {
		if errors.Is(err, domain.ErrOutOfBounds) {
			c.errorf("Invalid position (%d, %d). Allowed range: %d-%d.", x, y, domain.MinCoord, domain.MaxCoord)
			return
		}
		c.errorf("%v", err)
		return
	}
	fmt.Fprintf(c.out, "NPC \"%s\" added successfully.\n", name)
}

func (c *Console) rename(args string) {
	idxTok, name := nextToken(args)
	idx, err := strconv.Atoi(idxTok)
	if err != nil {
		c.errorf("index must be an integer, got %q", idxTok)
		return
	}
	if err := c.game.Rename(idx, name); err != nil {
		c.errorf("%v", err)
		return
	}
	fmt.Fprintf(c.out, "NPC %d renamed to \"%s\".\n", idx, name)
}

func (c *Console) save(path string) {
	n, err := c.game.Save(path)
	if err != nil {
		c.errorf("%v", err)
		return
	}
	fmt.Fprintf(c.out, "Saved %d NPCs to %s\n", n, path)
}

func (c *Console) load(path string) {
	n, err := c.game.Load(path)
	var parseErr *storage.ParseError
	switch {
	case errors.As(err, &parseErr):
		c.errorf("stopped reading %s at %v", path, parseErr)
	case err != nil:
		c.errorf("%v", err)
		return
	}
	fmt.Fprintf(c.out, "Loaded %d NPCs from %s\n", n, path)
}

func (c *Console) battle(args string) {
	distance := c.cfg.DefaultDistance
	if tok, _ := nextToken(args); tok != "" {
		d, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			c.errorf("distance must be a number, got %q", tok)
			return
		}
		distance = d
	}
	if err := engine.ValidateDistance(distance); err != nil {
		c.errorf("%v", err)
		return
	}

	if c.game.Count() < 2 {
		fmt.Fprintln(c.out, "Not enough NPCs to start a battle. At least 2 NPCs required.")
		return
	}

	fmt.Fprintf(c.out, "\n=== Battle Mode Started (Distance: %s meters) ===\n", strconv.FormatFloat(distance, 'f', -1, 64))
	report, err := c.game.StartBattle(distance)
	if err != nil {
		c.errorf("%v", err)
		return
	}
	fmt.Fprintln(c.out, "=== Battle Ended ===")
	fmt.Fprintf(c.out, "Rounds: %d, fights: %d\n", len(report.Rounds), report.Engagements())
	PrintRoster(c.out, report.Survivors)
}

func (c *Console) errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "Error: "+format+"\n", args...)
}

// PrintRoster печатает ростер в формате консоли
func PrintRoster(out io.Writer, roster []api.RosterEntry) {
	if len(roster) == 0 {
		fmt.Fprintln(out, "No NPCs on the map.")
		return
	}

	fmt.Fprintln(out, "\n=== Current NPCs ===")
	for i, e := range roster {
		fmt.Fprintf(out, "%d. %s \"%s\": (%d, %d)\n", i, e.Kind, e.Name, e.X, e.Y)
	}
	fmt.Fprintln(out, "==================")
}

// nextToken отрезает первое слово; остаток возвращается без одного разделителя,
// остальные пробелы сохраняются (важно для имён).
func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func pathOr(arg, fallback string) string {
	if p := strings.TrimSpace(arg); p != "" {
		return p
	}
	return fallback
}
