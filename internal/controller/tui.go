package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const defaultItemsPerPage = 10

type tuiStyles struct {
	title   lipgloss.Style
	path    lipgloss.Style
	flagged lipgloss.Style
	ok      lipgloss.Style
	faint   lipgloss.Style
}

func newTUIStyles() tuiStyles {
	return tuiStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		path:    lipgloss.NewStyle().Bold(true),
		flagged: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.PageDown, k.Top, k.Bottom, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

// TUI implements UI by collecting output during a run and showing it in a
// Bubble Tea pager once the run is over.
type TUI struct {
	output io.Writer
	styles tuiStyles

	mu      sync.Mutex
	mode    StartMode
	lines   []string
	footer  []string
	width   int
	height  int
	results int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, styles: newTUIStyles(), mode: ModeLint}
}

// Start resets collected output and reads the terminal size.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = newStartConfig(options).mode
	p.lines = nil
	p.footer = nil
	p.results = 0

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			p.width = width
			p.height = height
		}
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait renders the collected output, paging it when it does not fit.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	model := newPagerModel(p.mode.String(), p.lines, p.footer, p.styles)
	model.width = p.width
	model.height = p.height
	p.mu.Unlock()

	if !model.needsPagination() {
		_, _ = fmt.Fprint(p.output, model.View())
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		slog.Error("pager failed", "error", err)
	}
}

// DisplayEstimation records the literal census.
func (p *TUI) DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		p.appendLines(p.styles.flagged.Render(fmt.Sprintf("estimation error: %v", err)))
		return err
	}

	sorted := append([]m.Estimate(nil), estimates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	if len(sorted) == 0 {
		p.appendLines("📭 No Swift files found")
		return nil
	}

	totalLiterals, totalCandidates := 0, 0
	lines := make([]string, 0, len(sorted))

	for _, e := range sorted {
		count := fmt.Sprintf("%d candidate(s) of %d literal(s)", e.Candidates, e.Literals)
		if e.Candidates == 0 {
			count = p.styles.faint.Render(count)
		}

		lines = append(lines, fmt.Sprintf("%s: %s", e.Path, count))
		totalLiterals += e.Literals
		totalCandidates += e.Candidates
	}

	p.appendLines(lines...)
	p.setFooter(fmt.Sprintf("📊 Total: %d candidate(s) of %d literal(s) across %d file(s)",
		totalCandidates, totalLiterals, len(sorted)))

	return nil
}

// DisplayConcurrencyInfo records concurrency settings.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.appendLines(p.styles.faint.Render(fmt.Sprintf("%d worker(s), shard %d/%d", threads, shardIndex, shardCount)))
}

// DisplayFileResult records files that carry violations.
func (p *TUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	p.results++
	p.mu.Unlock()

	if len(result.Violations) == 0 {
		return
	}

	p.appendLines(fmt.Sprintf("%s %s: %d violation(s)",
		p.styles.flagged.Render("✗"), p.styles.path.Render(shortPath(result.Source)), len(result.Violations)))
}

// DisplayViolations records every violation.
func (p *TUI) DisplayViolations(ctx context.Context, violations []m.Violation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(violations) == 0 {
		p.appendLines(p.styles.ok.Render("✓ No hardcoded strings found"))
		return nil
	}

	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, fmt.Sprintf("  %s:%d:%d %s",
			v.Path, v.Line, v.Column, p.styles.flagged.Render(v.Literal)))
	}

	p.appendLines(lines...)

	return nil
}

// DisplayExplanation records the reasoning for every literal of a file.
func (p *TUI) DisplayExplanation(ctx context.Context, path m.Path, explanations []m.Explanation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := []string{p.styles.path.Render(string(path))}
	if len(explanations) == 0 {
		lines = append(lines, "📭 No string literals found")
	}

	for _, e := range explanations {
		decision := explanationDecision(e)

		switch {
		case e.Flagged:
			decision = p.styles.flagged.Render(decision)
		case !e.Candidate || e.Ignored:
			decision = p.styles.faint.Render(decision)
		default:
			decision = p.styles.ok.Render(decision)
		}

		lines = append(lines, fmt.Sprintf("  %d:%d %s -> %s", e.Line, e.Column, e.Literal, decision))

		if len(e.Chain) > 0 {
			lines = append(lines, p.styles.faint.Render("      "+strings.Join(e.Chain, " < ")))
		}
	}

	p.appendLines(lines...)

	return nil
}

// DisplaySummary records the run totals as the pager footer.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.setFooter(
		fmt.Sprintf("📊 Files: %d (cached %d) | Literals: %d | Candidates: %d", summary.Files, summary.Cached,
			summary.Literals, summary.Candidates),
		fmt.Sprintf("📊 Violations: %d | Ignored: %d | Density: %.1f%%", summary.Violations, summary.Ignored,
			summary.Density()*100),
	)
}

func (p *TUI) appendLines(lines ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lines = append(p.lines, lines...)
}

func (p *TUI) setFooter(lines ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.footer = lines
}

// pagerModel is the Bubble Tea model scrolling over collected lines.
type pagerModel struct {
	title    string
	lines    []string
	footer   []string
	styles   tuiStyles
	keys     keyMap
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines, footer []string, styles tuiStyles) pagerModel {
	return pagerModel{
		title:  title,
		lines:  append([]string(nil), lines...),
		footer: append([]string(nil), footer...),
		styles: styles,
		keys:   newKeyMap(),
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = clamp(pm.offset, 0, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pm.keys.Down):
		pm.offset++
	case key.Matches(msg, pm.keys.Up):
		pm.offset--
	case key.Matches(msg, pm.keys.PageDown):
		pm.offset += pm.itemsPerPage()
	case key.Matches(msg, pm.keys.PageUp):
		pm.offset -= pm.itemsPerPage()
	case key.Matches(msg, pm.keys.Top):
		pm.offset = 0
	case key.Matches(msg, pm.keys.Bottom):
		pm.offset = pm.maxOffset()
	}

	pm.offset = clamp(pm.offset, 0, pm.maxOffset())

	return pm, nil
}

// itemsPerPage calculates how many lines fit between header and footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return defaultItemsPerPage
	}
	// header box (4), title (2), footer block (1 + len(footer)), pagination (3)
	reserved := 10 + len(pm.footer)

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the content is too long for the terminal.
func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                  hardlit - Hardcoded Strings                   ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")
	fmt.Fprintf(&b, "  %s\n\n", pm.styles.title.Render(pm.title))

	if len(pm.lines) == 0 && len(pm.footer) == 0 {
		b.WriteString("  📭 Nothing to show\n")
		return b.String()
	}

	paginate := pm.needsPagination()
	visible := pm.lines

	start, end := 0, len(pm.lines)
	if paginate {
		start = clamp(pm.offset, 0, pm.maxOffset())
		end = min(start+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if len(pm.footer) > 0 {
		b.WriteString("\n")

		for _, line := range pm.footer {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	if paginate {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(pm.lines))
		fmt.Fprintf(&b, "  %s\n", pm.keys.help())
	}

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
