package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bridge "github.com/wippyai/arena-bridge"
	"github.com/wippyai/arena-bridge/arena"
	"github.com/wippyai/arena-bridge/objcache"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxEvents = 8

// record is the playground's native record: an opaque arena allocation.
type record struct {
	payload []byte
}

// recordWrapper is the playground's wrapper type.
type recordWrapper struct {
	bridge.Wrapper
	name string
}

type arenaEntry struct {
	ref     *bridge.ArenaRef
	dropped bool // host hold released via drop
}

type recordEntry struct {
	rec       *record
	arenaName string
}

type model struct {
	st       *bridge.State
	arenas   map[string]*arenaEntry
	records  map[string]*recordEntry
	wrappers map[string]*recordWrapper
	events   []string
	input    textinput.Model
	result   string
	err      error
}

func newModel() *model {
	ti := textinput.New()
	ti.Placeholder = "arena a | alloc a r 64 | wrap r | unref r | fuse a b | drop a | quit"
	ti.Focus()

	m := &model{
		st:       bridge.NewState(),
		arenas:   make(map[string]*arenaEntry),
		records:  make(map[string]*recordEntry),
		wrappers: make(map[string]*recordWrapper),
		input:    ti,
	}
	m.st.Cache().Subscribe(m)
	return m
}

// OnCacheEvent implements objcache.Observer. Commands run inside Update,
// so mutations happen on the program goroutine.
func (m *model) OnCacheEvent(e objcache.Event) {
	var what string
	switch e.Type {
	case objcache.EventAdded:
		what = "added"
	case objcache.EventRemoved:
		what = "removed"
	}
	m.events = append(m.events, fmt.Sprintf("%s %#x", what, uintptr(e.Key)))
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			m.result, m.err = m.exec(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) exec(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}

	switch args[0] {
	case "arena":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: arena <name>")
		}
		name := args[1]
		if _, ok := m.arenas[name]; ok {
			return "", fmt.Errorf("arena %q already exists", name)
		}
		m.arenas[name] = &arenaEntry{ref: bridge.NewArenaRef()}
		return "created arena " + name, nil

	case "alloc":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: alloc <arena> <record> <size>")
		}
		ae, ok := m.arenas[args[1]]
		if !ok {
			return "", fmt.Errorf("no arena %q", args[1])
		}
		if ae.ref.Arena().Released() {
			return "", fmt.Errorf("arena %q is released", args[1])
		}
		name := args[2]
		if _, ok := m.records[name]; ok {
			return "", fmt.Errorf("record %q already exists", name)
		}
		size, err := strconv.Atoi(args[3])
		if err != nil || size < 0 {
			return "", fmt.Errorf("bad size %q", args[3])
		}
		a := ae.ref.Arena()
		rec := arena.Allocate[record](a)
		rec.payload = arena.MakeSlice[byte](a, size, size)
		m.records[name] = &recordEntry{rec: rec, arenaName: args[1]}
		return fmt.Sprintf("allocated %s at %#x", name, uintptr(unsafe.Pointer(rec))), nil

	case "wrap":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: wrap <record>")
		}
		re, ok := m.records[args[1]]
		if !ok {
			return "", fmt.Errorf("no record %q", args[1])
		}
		ae := m.arenas[re.arenaName]
		key := bridge.KeyOf(unsafe.Pointer(re.rec))
		w, err := bridge.Wrap(m.st, key, func() (*recordWrapper, error) {
			w := &recordWrapper{name: args[1]}
			w.InitWrapper(m.st, key, ae.ref)
			return w, nil
		})
		if err != nil {
			return "", err
		}
		m.wrappers[args[1]] = w
		return fmt.Sprintf("wrapper %s refs=%d", args[1], w.RefCount()), nil

	case "unref":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: unref <record>")
		}
		w, ok := m.wrappers[args[1]]
		if !ok {
			return "", fmt.Errorf("record %q has no wrapper", args[1])
		}
		w.Unref()
		if w.RefCount() == 0 {
			delete(m.wrappers, args[1])
			return "wrapper " + args[1] + " released", nil
		}
		return fmt.Sprintf("wrapper %s refs=%d", args[1], w.RefCount()), nil

	case "fuse":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: fuse <arena> <arena>")
		}
		a, ok := m.arenas[args[1]]
		if !ok {
			return "", fmt.Errorf("no arena %q", args[1])
		}
		b, ok := m.arenas[args[2]]
		if !ok {
			return "", fmt.Errorf("no arena %q", args[2])
		}
		a.ref.Fuse(b.ref)
		return fmt.Sprintf("fused %s and %s", args[1], args[2]), nil

	case "drop":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: drop <arena>")
		}
		ae, ok := m.arenas[args[1]]
		if !ok {
			return "", fmt.Errorf("no arena %q", args[1])
		}
		if ae.dropped {
			return "", fmt.Errorf("arena %q already dropped", args[1])
		}
		ae.dropped = true
		ae.ref.Unref()
		return "dropped host hold on " + args[1], nil

	default:
		return "", fmt.Errorf("unknown command %q", args[0])
	}
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("arena-bridge inspect"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Arenas"))
	b.WriteByte('\n')
	if len(m.arenas) == 0 {
		b.WriteString(helpStyle.Render("  (none)"))
		b.WriteByte('\n')
	}
	for _, name := range sortedKeys(m.arenas) {
		ae := m.arenas[name]
		a := ae.ref.Arena()
		status := liveStyle.Render("live")
		if a.Released() {
			status = deadStyle.Render("released")
		} else if ae.dropped {
			status = liveStyle.Render("held by wrappers")
		}
		fmt.Fprintf(&b, "  %-10s %6d bytes  %s\n", name, a.SpaceAllocated(), status)
	}

	b.WriteString(sectionStyle.Render("Identity cache"))
	fmt.Fprintf(&b, " (%d entries)\n", m.st.Cache().Len())
	m.st.Cache().Each(func(k objcache.Key, o objcache.Object) bool {
		if w, ok := o.(*recordWrapper); ok {
			fmt.Fprintf(&b, "  %#-14x %-10s refs=%d\n", uintptr(k), w.name, w.RefCount())
		}
		return true
	})

	b.WriteString(sectionStyle.Render("Events"))
	b.WriteByte('\n')
	for _, e := range m.events {
		b.WriteString("  " + e + "\n")
	}

	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result) + "\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("commands: arena, alloc, wrap, unref, fuse, drop, quit · esc to exit"))
	b.WriteString("\n")
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
