package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isa-quest/internal/config"
	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/registry"
)

// marketGame is a fake game that records its market.
type marketGame struct {
	fakeGame
	market config.MarketPreset
}

func (g *marketGame) SetMarket(p config.MarketPreset) { g.market = p }

var lastMarketGame *marketGame

func init() {
	registry.Register("zz_menu_game", func() registry.Game {
		lastMarketGame = &marketGame{}
		return lastMarketGame
	})
}

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuMarketCycles(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	if m.Market() != "" {
		t.Fatalf("initial market = %q, want as configured", m.Market())
	}

	m = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Market() != config.MarketCalm {
		t.Errorf("after right market = %q, want calm", m.Market())
	}

	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Market() != config.MarketFlat {
		t.Errorf("after wrapping left market = %q, want flat", m.Market())
	}
	if !strings.Contains(m.View(), "flat (no risk)") {
		t.Error("flat market should be labelled as riskless")
	}

	if got := m.WithMarket(config.MarketVolatile).Market(); got != config.MarketVolatile {
		t.Errorf("WithMarket(volatile).Market() = %q", got)
	}
}

func TestMenuSelectCreatesGameWithMarket(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig()).WithMarket(config.MarketFlat)

	for i, item := range m.items {
		if item.GameID == "zz_menu_game" {
			m.cursor = i
		}
	}
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	result := m.result()
	if result.Quit || result.WantsScoreboard {
		t.Fatalf("result = %+v, want a game", result)
	}
	if result.GameID != "zz_menu_game" {
		t.Fatalf("GameID = %q, want zz_menu_game", result.GameID)
	}

	if _, err := result.CreateGame(); err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	if lastMarketGame.market != config.MarketFlat {
		t.Errorf("game market = %q, want flat", lastMarketGame.market)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuKey(NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.result().Quit {
		t.Error("q should quit")
	}
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	s := NewSessionModel(nil, core.DefaultConfig(), nil)
	for i, item := range s.menu.items {
		if item.GameID == "zz_menu_game" {
			s.menu.cursor = i
		}
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("session screen = %v, want game", s.screen)
	}

	// Pause, then go back to the menu.
	lastMarketGame.state.Paused = true
	next, _ = s.Update(TickMsg{ID: s.game.tickLoop})
	s = next.(SessionModel)
	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)

	if s.screen != screenMenu {
		t.Errorf("session screen = %v, want menu", s.screen)
	}
}
