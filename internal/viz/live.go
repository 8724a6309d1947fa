package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

const historyCapacity = 240

type TickMsg time.Time

// Model steps a growth law once per tick and renders the recent history,
// with keyboard control over the law parameters.
type Model struct {
	law       popdyn.GrowthLaw
	n0        float64
	n         float64
	t         int
	history   []float64
	running   bool
	showHelp  bool
	frameRate int

	params    map[string]float64
	paramKeys []string
	selected  int
}

func NewModel(law popdyn.GrowthLaw, n0 float64, frameRate int) Model {
	params := make(map[string]float64)
	if c, ok := law.(popdyn.Configurable); ok {
		for k, v := range c.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if frameRate < 1 {
		frameRate = 10
	}

	return Model{
		law:       law,
		n0:        n0,
		n:         n0,
		history:   []float64{n0},
		running:   true,
		frameRate: frameRate,
		params:    params,
		paramKeys: keys,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			m.n = m.law.Next(m.n)
			m.t++
			m.history = append(m.history, m.n)
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.n = m.n0
			m.t = 0
			m.history = []float64{m.n0}
		case "h":
			m.showHelp = !m.showHelp
		case "tab", "right":
			if len(m.paramKeys) > 0 {
				m.selected = (m.selected + 1) % len(m.paramKeys)
			}
		case "left":
			if len(m.paramKeys) > 0 {
				m.selected = (m.selected + len(m.paramKeys) - 1) % len(m.paramKeys)
			}
		case "+", "=":
			m.adjustParam(0.1)
		case "-", "_":
			m.adjustParam(-0.1)
		}
	}
	return m, nil
}

func (m *Model) adjustParam(delta float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	c, ok := m.law.(popdyn.Configurable)
	if !ok {
		return
	}
	key := m.paramKeys[m.selected]
	next := m.params[key] + delta
	if err := c.SetParam(key, next); err == nil {
		m.params[key] = next
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s map - live", m.law.Name())))
	b.WriteByte('\n')

	graph := asciigraph.Plot(m.history,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.Caption("population"),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteByte('\n')

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d", m.t)) + "\n")
	stats.WriteString(labelStyle.Render("N") + valueStyle.Render(fmt.Sprintf("%.4f", m.n)) + "\n")
	for i, key := range m.paramKeys {
		val := fmt.Sprintf("%.3f", m.params[key])
		if i == m.selected {
			stats.WriteString(activeParamStyle.Render(key+" "+val) + "\n")
		} else {
			stats.WriteString(labelStyle.Render(key) + valueStyle.Render(val) + "\n")
		}
	}
	state := "running"
	if !m.running {
		state = "paused"
	}
	stats.WriteString(labelStyle.Render("state") + valueStyle.Render(state))
	b.WriteString(statsStyle.Render(stats.String()))

	if m.showHelp {
		b.WriteString(helpStyle.Render("\nspace pause · r reset · tab select param · +/- adjust · q quit"))
	} else {
		b.WriteString(helpStyle.Render("\nh help · q quit"))
	}

	return b.String()
}

// RunLive starts the interactive live view and blocks until the user
// quits.
func RunLive(law popdyn.GrowthLaw, n0 float64, frameRate int) error {
	p := tea.NewProgram(NewModel(law, n0, frameRate))
	_, err := p.Run()
	return err
}
