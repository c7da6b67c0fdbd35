package controller

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

var statusColors = map[m.Status]lipgloss.Color{
	m.Converted: lipgloss.Color("2"),
	m.Failed:    lipgloss.Color("1"),
}

// documentDelegate renders one converted document per line.
type documentDelegate struct{}

func (d documentDelegate) Height() int  { return 1 }
func (d documentDelegate) Spacing() int { return 0 }
func (d documentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d documentDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	doc, ok := item.(documentItem)
	if !ok {
		return
	}

	color, ok := statusColors[doc.status]
	if !ok {
		color = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Width(10)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(24)
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if index == l.Index() {
		keyStyle = keyStyle.Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))
	}

	detail := fmt.Sprintf("%d edits  %d rejected  %d tokens", doc.edits, doc.rejected, doc.tokens)
	if doc.err != "" {
		detail = doc.err
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statusStyle.Render(string(doc.status)),
		keyStyle.Render(truncateToWidth(doc.key, 24)),
		detailStyle.Render(truncateToWidth(detail, l.Width()-40)),
	)
}

// convertModel tracks a conversion run and then shows its results. It also
// serves report viewing, where only the summary arrives.
type convertModel struct {
	width       int
	height      int
	progressBar progress.Model
	results     list.Model
	threads     int
	total       int
	completed   int
	failed      int
	running     map[string]struct{}
	summary     *m.RunSummary
	rendered    bool
}

func newConvertModel() convertModel {
	results := list.New([]list.Item{}, documentDelegate{}, 80, 10)
	results.SetShowPagination(false)
	results.SetShowFilter(true)
	results.SetShowHelp(false)
	results.SetShowTitle(false)
	results.SetShowStatusBar(false)
	results.FilterInput.Placeholder = "Filter documents…"

	return convertModel{
		progressBar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		results:     results,
		running:     make(map[string]struct{}),
	}
}

func (c convertModel) Init() tea.Cmd {
	return nil
}

func (c convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		c.results.SetSize(max(msg.Width-6, 20), max(msg.Height-12, 5))

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return c, tea.Quit
		}

		var cmd tea.Cmd

		c.results, cmd = c.results.Update(msg)

		return c, cmd

	case concurrencyMsg:
		c.rendered = true
		c.threads = msg.threads
		c.total = msg.count

	case startDocumentMsg:
		c.rendered = true
		c.running[msg.key] = struct{}{}

	case completedDocumentMsg:
		c.rendered = true
		c.completed++

		if msg.item.status == m.Failed {
			c.failed++
		}

		delete(c.running, msg.item.key)
		c.results.InsertItem(len(c.results.Items()), msg.item)

	case summaryMsg:
		c.rendered = true
		summary := msg.summary
		c.summary = &summary

		if len(c.results.Items()) == 0 {
			items := make([]list.Item, 0, len(summary.Documents))
			for _, e := range summary.Documents {
				items = append(items, entryItem(e))
			}

			c.results.SetItems(items)
			c.completed, c.total = len(items), len(items)
		}
	}

	return c, nil
}

func (c convertModel) percent() float64 {
	if c.total == 0 {
		return 0
	}

	return float64(c.completed) / float64(c.total)
}

func (c convertModel) View() string {
	if !c.rendered {
		return "Preparing conversion…\n"
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := "punctnorm conversion"
	if c.summary != nil {
		title = "punctnorm run " + c.summary.RunID
	}

	status := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Failed: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", c.completed)),
		accentStyle.Render(fmt.Sprintf("%d", c.total)),
		accentStyle.Render(fmt.Sprintf("%d", c.failed)),
		accentStyle.Render(fmt.Sprintf("%d", c.threads)),
	))

	sections := []string{
		titleStyle.Render(title),
		status,
		lipgloss.NewStyle().Padding(0, 2).Render(c.progressBar.ViewAs(c.percent())),
	}

	if len(c.running) > 0 && c.summary == nil {
		keys := make([]string, 0, len(c.running))
		for k := range c.running {
			keys = append(keys, k)
		}

		sort.Strings(keys)
		sections = append(sections, summaryStyle.Render("Converting: "+fmt.Sprint(keys)))
	}

	sections = append(sections,
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).Padding(0, 1).Render(c.results.View()),
	)

	footer := "Press q to quit"
	if c.summary != nil && c.summary.Output != "" {
		footer = fmt.Sprintf("Records written to %s  •  %s", c.summary.Output, footer)
	}

	sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 2).Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
