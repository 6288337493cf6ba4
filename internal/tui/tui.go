// Package tui is an interactive visualizer for the containers: one pane shows
// the hash set's buckets and chains, one shows the list's backing slots, and a
// command menu drives both.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"containers/arraylist"
	"containers/hashset"
)

// Options configures the containers the visualizer starts with.
type Options struct {
	SetCapacity  int
	Hasher       hashset.Hasher[string]
	ListCapacity int
	Logger       *slog.Logger
}

type model struct {
	focusIndex        int
	topPanes          []pane
	input             textinput.Model
	outputPane        viewport.Model
	outputPaneFocused bool
	output            []string
	set               *hashset.Set[string]
	list              *arraylist.List[int]
	opts              Options
	log               *slog.Logger
	width             int
	height            int
}

type pane struct {
	title   string
	items   list.Model
	isMenu  bool
	focused bool
}

// Indexes into model.topPanes.
const (
	bucketsPane = iota
	slotsPane
	commandsPane
)

const (
	emptySlot  = "·"
	chainArrow = " → "
	welcome    = "tab: switch pane · enter: run command · esc: quit"
)

var (
	borderStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	focusedBorderStyle = borderStyle.Copy().BorderForeground(lipgloss.Color("205"))
)

type menuItem struct {
	title, desc string
	selected    bool
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// customDelegate renders one row per item: a cursor when the pane has focus,
// and a marker on the row the last command touched.
type customDelegate struct {
	focused bool
}

func (d customDelegate) Height() int  { return 1 }
func (d customDelegate) Spacing() int { return 0 }
func (d customDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d customDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	mi, ok := item.(menuItem)
	if !ok {
		return
	}

	marker := " "
	if mi.selected {
		marker = "*"
	}
	cursor := " "
	if index == m.Index() && d.focused {
		cursor = ">"
	}

	fmt.Fprintf(w, "%s %s %s", cursor, marker, mi.Title())
}

var commands = []menuItem{
	{title: cmdInsert, desc: "value"},
	{title: cmdRemove, desc: "value"},
	{title: cmdContains, desc: "value"},
	{title: cmdAdd, desc: "number"},
	{title: cmdAddAt, desc: "index number"},
	{title: cmdGet, desc: "index"},
	{title: cmdRemoveAt, desc: "index"},
	{title: cmdAddAll, desc: "numbers, comma or space separated"},
	{title: cmdReset, desc: ""},
	{title: cmdExit, desc: ""},
}

func newModel(opts Options) model {
	if opts.SetCapacity == 0 {
		opts.SetCapacity = hashset.DefaultCapacity
	}
	if opts.Hasher == nil {
		opts.Hasher = hashset.Strings()
	}
	if opts.ListCapacity == 0 {
		opts.ListCapacity = arraylist.DefaultCapacity
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	menu := make([]list.Item, len(commands))
	for i, c := range commands {
		menu[i] = c
	}

	m := model{
		focusIndex: commandsPane,
		opts:       opts,
		log:        opts.Logger.With("component", "tui"),
	}
	m.resetContainers()

	m.topPanes = []pane{
		{"Buckets", createList("Buckets", bucketItems(m.set, -1), false), false, false},
		{"Slots", createList("Slots", slotItems(m.list, -1), false), false, false},
		{"Commands", createList("Commands", menu, true), true, true},
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = commands[0].desc
	m.input.Focus()

	m.outputPane = viewport.New(100, 10)
	m.appendOutput(welcome)
	return m
}

func createList(title string, items []list.Item, focused bool) list.Model {
	l := list.New(items, customDelegate{focused: focused}, 30, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)

	l.SetHeight(listHeight(l, 0))
	return l
}

// listHeight is the height l needs to show every item below its title,
// capped at maxHeight when maxHeight is positive.
func listHeight(l list.Model, maxHeight int) int {
	h := len(l.Items()) + titleHeight(l)
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
	}
	return h
}

// titleHeight is the number of rows the list's title bar takes.
func titleHeight(l list.Model) int {
	return 1 + l.Styles.TitleBar.GetVerticalFrameSize() + l.Styles.Title.GetVerticalFrameSize()
}

func bucketItems(set *hashset.Set[string], touched int) []list.Item {
	items := make([]list.Item, set.Capacity())
	for i := range items {
		chain := emptySlot
		if values := set.Bucket(i); len(values) > 0 {
			chain = strings.Join(values, chainArrow)
		}
		items[i] = menuItem{title: fmt.Sprintf("%02d │ %s", i, chain), selected: i == touched}
	}
	return items
}

func slotItems(l *arraylist.List[int], touched int) []list.Item {
	values := l.Values()
	items := make([]list.Item, l.Cap())
	for i := range items {
		slot := emptySlot
		if i < len(values) {
			slot = fmt.Sprint(values[i])
		}
		items[i] = menuItem{title: fmt.Sprintf("%02d │ %s", i, slot), selected: i == touched}
	}
	return items
}

func (m *model) resetContainers() {
	m.set = hashset.NewWithCapacity(m.opts.Hasher, m.opts.SetCapacity)
	m.list = arraylist.NewWithCapacity[int](m.opts.ListCapacity)
}

// refresh rebuilds the container panes, marking the touched bucket and slot.
func (m *model) refresh(bucket, slot int) {
	m.topPanes[bucketsPane].items.SetItems(bucketItems(m.set, bucket))
	m.topPanes[slotsPane].items.SetItems(slotItems(m.list, slot))
	m.layoutPanes()
}

// layoutPanes gives every top pane room for all of its rows, up to the
// height available on screen.
func (m *model) layoutPanes() {
	maxHeight := 0
	if m.height > 0 {
		maxHeight = m.paneHeight()
	}
	for i := range m.topPanes {
		m.topPanes[i].items.SetHeight(listHeight(m.topPanes[i].items, maxHeight))
	}
}

func (m *model) paneHeight() int {
	return (m.height / 2) - 2
}

func (m *model) appendOutput(line string) {
	m.output = append(m.output, line)
	m.outputPane.SetContent(strings.Join(m.output, "\n"))
	m.outputPane.GotoBottom()
}

func (m *model) updatePaneDelegates() {
	for i := range m.topPanes {
		m.topPanes[i].items.SetDelegate(customDelegate{focused: i == m.focusIndex})
	}
}

func (m *model) cycleFocus() {
	previousFocusIndex := m.focusIndex
	m.focusIndex = (m.focusIndex + 1) % (len(m.topPanes) + 1) // Include output pane

	if previousFocusIndex < len(m.topPanes) {
		m.topPanes[previousFocusIndex].focused = false
	} else {
		m.outputPaneFocused = false
	}
	if m.focusIndex < len(m.topPanes) {
		m.topPanes[m.focusIndex].focused = true
	} else {
		m.outputPaneFocused = true
	}

	if m.focusIndex == commandsPane {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.updatePaneDelegates()
}

// runSelected executes the highlighted command with the input line as its
// argument and clears the input.
func (m *model) runSelected() tea.Cmd {
	item, ok := m.topPanes[commandsPane].items.SelectedItem().(menuItem)
	if !ok {
		return nil
	}
	arg := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	return m.execute(item.title, arg)
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.cycleFocus()
			return m, nil
		case "enter":
			if m.focusIndex >= len(m.topPanes) || !m.topPanes[m.focusIndex].isMenu {
				return m, nil
			}
			cmd := m.runSelected()
			return m, cmd
		case "up", "down", "pgup", "pgdown":
			return m.updateFocused(msg)
		case "q":
			if m.focusIndex != commandsPane {
				return m, tea.Quit
			}
		}

		if m.focusIndex == commandsPane {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to whichever pane has focus.
func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusIndex < len(m.topPanes) {
		m.topPanes[m.focusIndex].items, cmd = m.topPanes[m.focusIndex].items.Update(msg)
		if m.focusIndex == commandsPane {
			if item, ok := m.topPanes[commandsPane].items.SelectedItem().(menuItem); ok {
				m.input.Placeholder = item.desc
			}
		}
		return m, cmd
	}
	m.outputPane, cmd = m.outputPane.Update(msg)
	return m, cmd
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height

	for i := range m.topPanes {
		m.topPanes[i].items.SetWidth(m.width/len(m.topPanes) - 2)
	}
	m.layoutPanes()
	m.input.Width = m.width - 6
	m.outputPane.Width = m.width - 2
	m.outputPane.Height = m.height/2 - 4
}

func (m model) View() string {
	var topPanes []string
	paneHeight := m.paneHeight()
	paneWidth := m.width/len(m.topPanes) - 2

	for _, pane := range m.topPanes {
		style := borderStyle
		if pane.focused {
			style = focusedBorderStyle
		}
		topPanes = append(topPanes, style.Width(paneWidth).Height(paneHeight).Render(pane.items.View()))
	}
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, topPanes...)

	inputStyle := borderStyle
	if m.focusIndex == commandsPane {
		inputStyle = focusedBorderStyle
	}
	input := inputStyle.Width(m.width - 2).Render(m.input.View())

	outputStyle := borderStyle
	if m.outputPaneFocused {
		outputStyle = focusedBorderStyle
	}
	output := outputStyle.Width(m.width - 2).Height(m.outputPane.Height).Render(m.outputPane.View())

	return lipgloss.JoinVertical(lipgloss.Left, topRow, input, output)
}

// Run starts the visualizer and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running visualizer: %w", err)
	}
	return nil
}
