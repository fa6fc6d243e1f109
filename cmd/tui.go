/*
Copyright © 2026 Enegg
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	matchesStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F25D94"))
)

type itemEntry struct {
	it *item.Item
}

func (e itemEntry) Title() string       { return e.it.Name }
func (e itemEntry) Description() string { return "" }
func (e itemEntry) FilterValue() string { return e.it.Name }

type lookupModel struct {
	pack      *item.Pack
	reg       *stats.Registry
	textInput textinput.Model
	viewport  viewport.Model
	matches   list.Model
	withBuffs bool
	width     int
	height    int
	showList  bool
	status    string
}

func newLookupModel(pack *item.Pack, reg *stats.Registry) lookupModel {
	ti := textinput.New()
	ti.Placeholder = "Item name or abbreviation (e.g., HHC)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(0, 0)
	vp.SetContent("Type to search the item catalog.\nPress ctrl+b to toggle arena buffs, esc to quit.")

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	matches := list.New([]list.Item{}, delegate, 50, 7)
	matches.SetShowTitle(false)
	matches.SetShowStatusBar(false)
	matches.SetFilteringEnabled(false) // resolution does the filtering
	matches.SetShowHelp(false)

	return lookupModel{
		pack:      pack,
		reg:       reg,
		textInput: ti,
		viewport:  vp,
		matches:   matches,
	}
}

func (m *lookupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *lookupModel) updateMatches() {
	val := strings.TrimSpace(m.textInput.Value())
	var items []list.Item

	defer func() {
		m.matches.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 7 {
				h = 7
			}
			if h < 3 {
				h = 3
			}
			m.matches.SetHeight(h)
			m.matches.ResetSelected()
		}
	}()

	if val == "" {
		m.status = ""
		return
	}

	found, err := m.pack.Resolve(val, 10)
	if err != nil {
		m.status = fmt.Sprintf("%v", err)
		return
	}
	m.status = fmt.Sprintf("%d matches", len(found))
	for _, it := range found {
		items = append(items, itemEntry{it: it})
	}
}

func (m *lookupModel) showSelected() {
	entry, ok := m.matches.SelectedItem().(itemEntry)
	if !ok {
		return
	}

	var arena *buffs.ArenaBuffs
	if m.withBuffs {
		arena = buffs.Max
	}

	card, err := renderCard(entry.it, entry.it.Stats, m.reg, arena)
	if err != nil {
		card = fmt.Sprintf("Error rendering %s: %v", entry.it.Name, err)
	}
	m.viewport.SetContent(card)
	m.viewport.GotoTop()
}

func (m *lookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp, tea.KeyDown:
			if m.showList {
				m.matches, lsCmd = m.matches.Update(msg)
				m.showSelected()
			}

		case tea.KeyCtrlB:
			m.withBuffs = !m.withBuffs
			m.showSelected()

		case tea.KeyEnter:
			m.showSelected()

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateMatches()
			m.showSelected()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 8
		m.matches.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	inputH := 1
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.matches.Height() + 2 // borders
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))

	m.viewport.Height = m.height - (titleH + inputH + listAreaHeight + infoH + 8)
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *lookupModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	buffsNote := "buffs off"
	if m.withBuffs {
		buffsNote = "buffs MAX"
	}
	title := titleStyle.Render(fmt.Sprintf(" Super Mechs | %s | %s ", m.pack.Config.Name, buffsNote))

	cardBox := cardBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), matchesStyle.Render(m.matches.View()))
	} else {
		inputArea = m.textInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		cardBox,
		inputArea,
		infoStyle.Render(fmt.Sprintf("%s  (esc quit, up/down pick, ctrl+b buffs)", m.status)),
	)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive item browser",
	Long: `Opens a full-screen item browser: type a name or abbreviation, pick a
match with the arrow keys, and toggle maxed arena buffs with ctrl+b.`,
	Run: func(cmd *cobra.Command, args []string) {
		pack, err := loadPack()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		reg, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading stat definitions: %v\n", err)
			os.Exit(1)
		}

		m := newLookupModel(pack, reg)
		p := tea.NewProgram(&m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running TUI: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}