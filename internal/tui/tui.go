// Package tui содержит интерактивный браузер каталога треков
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/moltify/internal/catalog"
	"github.com/hazadus/moltify/internal/query"
	"github.com/hazadus/moltify/internal/track"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	detailTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).MarginLeft(2)
	detailMetaStyle   = lipgloss.NewStyle().MarginLeft(2)
	codeStyle         = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("244"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track track.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Artist, i.track.Title)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Форматируем строку в виде таблицы: Жанр | Исполнитель | Название | Прослушивания
	str := fmt.Sprintf("%-12s %-20s %-45s ▶ %d",
		i.track.Genre,
		truncateString(i.track.Artist, 20),
		truncateString(i.track.Title, 45),
		i.track.Plays)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// playedMsg отправляется после увеличения счетчика прослушиваний
type playedMsg struct {
	track track.Track
	plays int
}

// Model представляет модель браузера каталога
type Model struct {
	list     list.Model
	repo     *catalog.Repository
	detail   *track.Track
	plays    int
	quitting bool
}

// NewModel создает новую модель браузера каталога
func NewModel(repo *catalog.Repository) *Model {
	result := repo.List("", query.SortNew, query.MaxLimit)

	// Преобразуем треки в элементы списка
	items := make([]list.Item, len(result.Tracks))
	for i, t := range result.Tracks {
		items[i] = trackItem{track: t}
	}

	l := list.New(items, trackItemDelegate{}, 0, 0)
	l.Title = "Каталог Moltify"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list: l,
		repo: repo,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case playedMsg:
		m.detail = &msg.track
		m.plays = msg.plays
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.detail != nil {
				m.detail = nil
				m.refresh()
				return m, nil
			}

		case "enter":
			if m.detail == nil {
				if item, ok := m.list.SelectedItem().(trackItem); ok {
					return m, m.playTrack(item.track)
				}
			}
		}
	}

	if m.detail != nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// playTrack увеличивает счетчик прослушиваний и открывает детальный экран
func (m *Model) playTrack(t track.Track) tea.Cmd {
	return func() tea.Msg {
		plays, err := m.repo.IncrementPlay(t.ID)
		if err != nil {
			// Счетчик не критичен, показываем трек с прежним значением
			plays = t.Plays
		}
		return playedMsg{track: t, plays: plays}
	}
}

// refresh перечитывает каталог и обновляет элементы списка
func (m *Model) refresh() {
	result := m.repo.List("", query.SortNew, query.MaxLimit)
	items := make([]list.Item, len(result.Tracks))
	for i, t := range result.Tracks {
		items[i] = trackItem{track: t}
	}
	m.list.SetItems(items)
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	if m.detail != nil {
		return m.detailView()
	}

	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: слушать • q: выход")
	return view + "\n" + extraHelp
}

// detailView отображает детальный экран трека с кодом синтеза
func (m *Model) detailView() string {
	t := m.detail

	description := ""
	if t.Description != nil {
		description = *t.Description
	}

	meta := fmt.Sprintf("%s • %s • %d сек. • ▶ %d\n%s",
		t.Artist, t.Genre, t.Duration, m.plays, description)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(detailTitleStyle.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(detailMetaStyle.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(codeStyle.Render(t.Code))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Esc: назад • q: выход"))
	return b.String()
}

// truncateString обрезает строку до указанной длины, добавляя "..."
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// App обертка для запуска браузера каталога
type App struct {
	model *Model
}

// NewApp создает новое TUI-приложение
func NewApp(repo *catalog.Repository) *App {
	return &App{model: NewModel(repo)}
}

// Run запускает TUI
func (a *App) Run() error {
	program := tea.NewProgram(a.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
