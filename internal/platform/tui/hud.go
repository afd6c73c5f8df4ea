package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
)

// HUDRows is the number of terminal rows the HUD takes from the arena:
// the status line, the boss line and the help line.
const HUDRows = 3

// Floating damage numbers rise one row every floaterRise ticks and vanish
// after floaterTicks.
const (
	floaterTicks = 30
	floaterRise  = 10
	barWidth     = 20
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("24")).
			Padding(1, 3)

	rarityColors = map[game.Rarity]lipgloss.Color{
		game.RarityCommon:   lipgloss.Color("245"),
		game.RarityUncommon: lipgloss.Color("39"),
		game.RarityRare:     lipgloss.Color("214"),
	}
)

type floater struct {
	at    core.Vec3
	text  string
	color core.Color
	age   int
}

// HUD is the terminal overlay: menu, status bars, upgrade cards, result
// panels and floating damage numbers. It implements game.UI; key presses
// are queued and reported on the next Frame.
type HUD struct {
	keys   KeyMap
	help   help.Model
	hpBar  progress.Model
	xpBar  progress.Model
	boss   progress.Model
	screen *core.Screen
	camera *Camera

	view     game.UIView
	command  game.Command
	picked   int
	cursor   int
	floaters []floater
}

// NewHUD creates a HUD that draws damage numbers into the arena screen.
func NewHUD(keys KeyMap, screen *core.Screen, camera *Camera) *HUD {
	bar := func(color string) progress.Model {
		return progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
	}
	return &HUD{
		keys:   keys,
		help:   help.New(),
		hpBar:  bar("#e0405a"),
		xpBar:  bar("#3fa7d6"),
		boss:   bar("#b0124a"),
		screen: screen,
		camera: camera,
		picked: game.NoPick,
	}
}

// Frame records the view, draws the floating numbers and reports the
// commands and pick queued since the previous frame.
func (h *HUD) Frame(v game.UIView) game.UIResult {
	h.view = v
	h.view.DamageNumbers = nil
	h.help.Width = v.Width

	switch {
	case v.State != game.StatePlaying:
		h.floaters = h.floaters[:0]
	case !v.ShowUpgrade:
		h.updateFloaters(v.DamageNumbers)
	}

	res := game.UIResult{ShowUpgrade: v.ShowUpgrade, Picked: game.NoPick, Command: h.command}
	h.command = game.CommandNone

	if !v.ShowUpgrade {
		h.picked, h.cursor = game.NoPick, 0
		return res
	}
	if h.picked != game.NoPick {
		if h.picked < len(v.Choices) {
			res.ShowUpgrade = false
			res.Picked = h.picked
		}
		h.picked, h.cursor = game.NoPick, 0
	}
	return res
}

func (h *HUD) updateFloaters(hits []game.Intent) {
	kept := h.floaters[:0]
	for _, f := range h.floaters {
		f.age++
		if f.age < floaterTicks {
			kept = append(kept, f)
		}
	}
	for _, hit := range hits {
		f := floater{at: hit.Position, text: fmt.Sprintf("%.0f", hit.Amount), color: core.ColorWhite}
		if hit.Crit {
			f.text += "!"
			f.color = core.ColorBrightYellow
		}
		kept = append(kept, f)
	}
	h.floaters = kept

	for _, f := range h.floaters {
		x, y := h.camera.WorldToScreen(f.at)
		y -= 1 + f.age/floaterRise
		if h.camera.Visible(x, y) {
			h.screen.DrawText(x, y, f.text, f.color)
		}
	}
}

// HandleKey queues the command or pick a key stands for in the current
// state. It reports whether the key was consumed.
func (h *HUD) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, h.keys.Quit):
		h.command = game.CommandExit
		return true
	case key.Matches(msg, h.keys.Help):
		h.help.ShowAll = !h.help.ShowAll
		return true
	}

	switch h.view.State {
	case game.StateMenu:
		if key.Matches(msg, h.keys.Start) {
			h.command = game.CommandStart
			return true
		}
	case game.StateGameOver, game.StateWin:
		if key.Matches(msg, h.keys.Restart, h.keys.Start) {
			h.command = game.CommandRestart
			return true
		}
	case game.StatePlaying:
		if h.view.ShowUpgrade {
			return h.handleUpgradeKey(msg)
		}
	}
	return false
}

func (h *HUD) handleUpgradeKey(msg tea.KeyMsg) bool {
	n := len(h.view.Choices)
	if n == 0 {
		return false
	}
	switch {
	case key.Matches(msg, h.keys.Pick):
		if i := int(msg.String()[0] - '1'); i < n {
			h.picked = i
		}
	case key.Matches(msg, h.keys.Start):
		h.picked = h.cursor
	case key.Matches(msg, h.keys.AimLeft, h.keys.Left):
		h.cursor = (h.cursor + n - 1) % n
	case key.Matches(msg, h.keys.AimRight, h.keys.Right):
		h.cursor = (h.cursor + 1) % n
	default:
		return false
	}
	return true
}

// View lays the HUD around the rendered arena.
func (h *HUD) View(arena string) string {
	v := h.view
	switch v.State {
	case game.StateMenu:
		return h.place(h.menuPanel())
	case game.StateGameOver, game.StateWin:
		if v.Result != nil {
			return h.place(h.resultPanel(*v.Result))
		}
	case game.StatePlaying:
		body := arena
		if v.ShowUpgrade {
			body = lipgloss.Place(v.Width, max(v.Height-HUDRows, 0), lipgloss.Center, lipgloss.Center, h.cards())
		}
		return strings.Join([]string{h.statusLine(), h.bossLine(), body, h.help.View(h.keys)}, "\n")
	}
	return ""
}

func (h *HUD) place(s string) string {
	if h.view.Width <= 0 || h.view.Height <= 0 {
		return s
	}
	return lipgloss.Place(h.view.Width, h.view.Height, lipgloss.Center, lipgloss.Center, s)
}

func (h *HUD) statusLine() string {
	p := h.view.Player
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("HP "),
		h.hpBar.ViewAs(ratio(p.HP, p.MaxHP)),
		fmt.Sprintf(" %3.0f/%-3.0f  ", p.HP, p.MaxHP),
		labelStyle.Render(fmt.Sprintf("LV %d ", p.Level)),
		h.xpBar.ViewAs(ratio(float64(p.XP), float64(p.XPNeeded))),
		fmt.Sprintf("  %s / %s", FormatClock(h.view.Elapsed), FormatClock(h.view.WinTime)),
		dimStyle.Render(fmt.Sprintf("  tier %d", h.view.Difficulty)),
	)
}

func (h *HUD) bossLine() string {
	if !h.view.BossAlive {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("LEVIATHAN "),
		h.boss.ViewAs(ratio(h.view.BossHP, h.view.BossMaxHP)),
		fmt.Sprintf(" %.0f", h.view.BossHP),
	)
}

func (h *HUD) cards() string {
	cards := make([]string, 0, len(h.view.Choices))
	for i, u := range h.view.Choices {
		border := lipgloss.RoundedBorder()
		if i == h.cursor {
			border = lipgloss.ThickBorder()
		}
		color := rarityColors[u.Rarity]
		style := lipgloss.NewStyle().
			Border(border).
			BorderForeground(color).
			Width(24).
			Padding(0, 1)
		body := fmt.Sprintf("%s %s\n%s\n\n%s",
			labelStyle.Render(fmt.Sprintf("[%d]", i+1)),
			lipgloss.NewStyle().Bold(true).Render(u.Name),
			lipgloss.NewStyle().Foreground(color).Render(strings.ToUpper(u.Rarity.String())),
			u.Description,
		)
		cards = append(cards, style.Render(body))
	}
	title := titleStyle.Render(fmt.Sprintf("LEVEL %d - choose an upgrade", h.view.Player.Level))
	return lipgloss.JoinVertical(lipgloss.Center, title, "", lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func (h *HUD) menuPanel() string {
	lines := []string{
		titleStyle.Render("T I D E P O O L"),
		"",
		"Survive the deep for " + FormatClock(h.view.WinTime) + ".",
		"Harpoons fire on their own; keep moving and aim.",
		"Eat kelp to heal. Beware the leviathan.",
		"",
		labelStyle.Render("enter") + " dive    " + labelStyle.Render("q") + " quit",
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (h *HUD) resultPanel(r game.RunResult) string {
	title := "LOST AT SEA"
	if r.Outcome == game.StateWin {
		title = "YOU SURFACED"
	}
	lines := []string{
		titleStyle.Render(title),
		"",
		fmt.Sprintf("score      %d", r.Score),
		fmt.Sprintf("survived   %s", FormatClock(r.Survived)),
		fmt.Sprintf("kills      %d", r.Kills),
		fmt.Sprintf("leviathans %d", r.BossKills),
		fmt.Sprintf("level      %d", r.Level),
		fmt.Sprintf("tier       %d", r.Difficulty),
		"",
		labelStyle.Render("r") + " dive again    " + labelStyle.Render("q") + " quit",
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds float64) string {
	s := max(int(seconds), 0)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return core.ClampF(v/maxV, 0, 1)
}
