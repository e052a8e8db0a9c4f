// Package tui is a terminal rendition of the portfolio gallery. It drives a
// viewstate.Controller against an in-memory history, so enter/esc behave like
// tapping an app and pressing the browser's back button.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/profile"
	"github.com/saadkhalil01/portfolio/internal/viewstate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// header lines plus help line
	chromeHeight = 5
)

// appItem adapts a catalog item to bubbles/list.Item
type appItem struct {
	item *catalog.Item
}

func (a appItem) Title() string {
	return discStyle(a.item.Variant).Render(a.item.Icon.Glyph()) + " " + a.item.Name
}
func (a appItem) Description() string { return a.item.Description }
func (a appItem) FilterValue() string { return a.item.Name }

// Params configures an App.
type Params struct {
	Catalog *catalog.Catalog
	Profile *profile.Profile
	// History defaults to a fresh MemoryHistory.
	History *viewstate.MemoryHistory
	Log     zerolog.Logger
}

// App is the bubbletea model. The view state itself lives in the controller;
// App only keeps widget state.
type App struct {
	ctrl    *viewstate.Controller
	history *viewstate.MemoryHistory
	profile *profile.Profile

	keys   KeyMap
	list   list.Model
	detail viewport.Model
	help   help.Model

	shown         *catalog.Item
	width, height int
	quitting      bool
}

func NewApp(p Params) App {
	h := p.History
	if h == nil {
		h = viewstate.NewMemoryHistory()
	}
	ctrl := viewstate.New(h, viewstate.WithLogger(p.Log))
	ctrl.Attach(h)

	apps := p.Catalog.Items()
	items := make([]list.Item, 0, len(apps))
	for _, it := range apps {
		items = append(items, appItem{item: it})
	}

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight-chromeHeight)
	l.Title = "My Work"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("app", "apps")
	l.KeyMap.Quit.SetEnabled(false)

	return App{
		ctrl:    ctrl,
		history: h,
		profile: p.Profile,
		keys:    DefaultKeyMap(),
		list:    l,
		detail:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(p Params) error {
	app := NewApp(p)
	defer app.Close()
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// Close detaches the controller from the history.
func (m App) Close() {
	m.ctrl.Close()
}

// State returns the controller's current view state.
func (m App) State() viewstate.State {
	return m.ctrl.State()
}

// Cursor returns the highlighted gallery index.
func (m App) Cursor() int {
	return m.list.Index()
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Contact):
			m.ctrl.ToggleMenu()
			return m, nil
		case key.Matches(msg, m.keys.Gesture):
			m.backGesture()
			m.sync()
			return m, nil
		}

		if m.ctrl.State().Mode() == viewstate.Detail {
			if key.Matches(msg, m.keys.Back) {
				m.ctrl.GoBack()
				m.sync()
				return m, nil
			}
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Open):
			if it, ok := m.list.SelectedItem().(appItem); ok {
				_ = m.ctrl.SelectItem(it.item)
				m.sync()
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			// nothing to pop in the gallery; still closes the contact menu
			m.backGesture()
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// backGesture behaves like a platform back button: pop the history if it has
// an entry, otherwise deliver the back event directly.
func (m *App) backGesture() {
	if err := m.history.Back(); errors.Is(err, viewstate.ErrNoEntry) {
		m.ctrl.OnBackNavigation()
	}
}

// sync refreshes the detail viewport when the selection changed.
func (m *App) sync() {
	sel := m.ctrl.State().Selected
	if sel == m.shown {
		return
	}
	m.shown = sel
	if sel != nil {
		m.detail.SetContent(renderDetail(sel, m.detail.Width))
		m.detail.GotoTop()
	}
}

func (m *App) resize(w, h int) {
	m.width, m.height = w, h
	body := h - chromeHeight
	if body < 1 {
		body = 1
	}
	m.list.SetSize(w, body)
	m.detail.Width = w
	m.detail.Height = body
	m.help.Width = w
	if m.shown != nil {
		m.detail.SetContent(renderDetail(m.shown, w))
	}
}

func (m App) View() string {
	if m.quitting {
		return ""
	}
	st := m.ctrl.State()

	var body string
	if st.Selected != nil {
		body = m.detail.View()
	} else {
		body = m.list.View()
	}
	if st.MenuOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.contactMenu())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		body,
		m.help.View(m.keys),
	)
}

func (m App) header() string {
	p := m.profile
	name := nameStyle.Render(p.FirstName + " " + p.LastName)
	return lipgloss.JoinVertical(lipgloss.Left,
		name,
		roleStyle.Render(p.Role),
		mutedStyle.Render(p.Experience),
		"",
	)
}

func (m App) contactMenu() string {
	var b strings.Builder
	b.WriteString(headingStyle.UnsetMarginTop().Render("Contact"))
	for _, c := range m.profile.Contacts() {
		fmt.Fprintf(&b, "\n%s %s", mutedStyle.Render(c.Label+":"), c.Display)
	}
	fmt.Fprintf(&b, "\n%s %s", mutedStyle.Render("LinkedIn:"), linkStyle.Render(m.profile.LinkedIn))
	fmt.Fprintf(&b, "\n%s %s", mutedStyle.Render("GitHub:"), linkStyle.Render(m.profile.GitHub))
	return menuStyle.Render(b.String())
}

func renderDetail(it *catalog.Item, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(discStyle(it.Variant).Render(it.Icon.Glyph()))
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(it.Name))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(it.Description))
	b.WriteString("\n")

	if !it.Links.Empty() {
		b.WriteString(headingStyle.Render("Download"))
		b.WriteString("\n")
		if it.Links.AppStore != "" {
			fmt.Fprintf(&b, "App Store    %s\n", linkStyle.Render(it.Links.AppStore))
		}
		if it.Links.PlayStore != "" {
			fmt.Fprintf(&b, "Google Play  %s\n", linkStyle.Render(it.Links.PlayStore))
		}
	}

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		b.WriteString(headingStyle.Render(title))
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(wrap.Render("• " + l))
			b.WriteString("\n")
		}
	}
	section("Screens", it.Screens)
	section("Features", it.Features)
	section("Technologies", it.Technologies)

	if n := len(it.Screenshots); n > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("\n%d screenshots on the web page", n)))
	}
	return b.String()
}
