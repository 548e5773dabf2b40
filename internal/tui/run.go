package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/siqnastee/internal/config"
)

// Run takes over the terminal until the user quits.
func Run(cfg *config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(opts, cfg.FPS), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Sketch() != nil {
		log.Info().Int("touched", m.Sketch().TouchedCount()).Int("moves", m.Sketch().Touches()).Msg("terminal session ended")
	}
	return nil
}
