package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// fileDelegate renders one input file per line.
type fileDelegate struct {
	offset int
}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	// Two right-aligned count columns of 6 plus spacing.
	width := m.Width() - 16

	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayPath := truncateToWidth(file.path, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		countStyle = selected.Width(6).Align(lipgloss.Right)
		pathStyle = selected
		displayPath = animateScroll(file.path, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.documents)),
		countStyle.Render(fmt.Sprintf("%d", file.annotations)),
		pathStyle.Render(displayPath),
	)
}

// animateScroll shows a window of text that moves one rune per offset step
// once a short pause has elapsed.
func animateScroll(text string, width int, offset int) string {
	const (
		gap   = "   "
		pause = 5
	)

	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width || offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	start := (offset - pause) % len(runes)

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%len(runes)])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	const ellipsis = "…"

	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// estimateModel lists input files without converting anything.
type estimateModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     fileDelegate
	documents    int
	annotations  int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := fileDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetWidth(m.width)

	case tickMsg:
		if m.fileList.FilterState() == list.Filtering || !m.rendered {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.fileList.SetDelegate(m.delegate)

		return m, tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.fileList, cmd = m.fileList.Update(msg)

		if m.fileList.Index() != m.lastSelected {
			m.lastSelected = m.fileList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.fileList.SetDelegate(m.delegate)
		}

		return m, cmd

	case estimationMsg:
		return m.handleEstimationMsg(msg), nil
	}

	return m, nil
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.rendered = true
	m.err = msg.err
	m.documents = msg.documents
	m.annotations = msg.annotations

	items := make([]list.Item, 0, len(msg.files))
	for _, f := range msg.files {
		items = append(items, f)
	}

	m.fileList.SetItems(items)

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m estimateModel) View() string {
	if !m.rendered {
		return "Loading annotation files…\n"
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("punctnorm annotation files")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 0, 1, 2)
		return lipgloss.JoinVertical(lipgloss.Left, title, errStyle.Render("Error: "+m.err.Error()))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Documents: %s   Annotations: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.documents)),
		accentStyle.Render(fmt.Sprintf("%d", m.annotations)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.fileList.Items()))),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, m.renderTable(), footer)
}

func (m estimateModel) renderTable() string {
	// Title, summary, footer, borders and header take nine rows.
	listHeight := max(m.height-9, 5)
	listWidth := m.width - 6

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%6s  %6s  %s", "Docs", "Spans", "File Path"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.fileList.View()))
}
