package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"pomo/internal/adapters/sound"
	"pomo/internal/logging"
	"pomo/internal/ports"
	"pomo/internal/services"
	"pomo/internal/ui"
)

// sessionModel wraps ui.Model to log the connection lifecycle
type sessionModel struct {
	*ui.Model
	connectionID string
	startTime    time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		snapshot := s.Model.Timer()
		logging.Logger.Info("SSH session ended",
			"connection_id", s.connectionID,
			"duration", time.Since(s.startTime).String(),
			"status", snapshot.Status(),
			"elapsed", snapshot.Elapsed)
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates an independent timer and model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connectionID := uuid.New().String()

	logging.Logger.Info("New SSH session",
		"connection_id", connectionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// The client's terminal is the only speaker we can reach
	var player ports.SoundPlayer = sound.MutedPlayer{}
	if s.config.SoundEnabled {
		player = sound.NewBellPlayer(sess)
	}

	timer := services.NewTimerService(s.config.Timer, services.NewNotificationService(player))
	model := ui.NewModel(timer, ui.NewKeyMap(s.config.Keys), s.config.TickInterval, false)

	return &sessionModel{
		Model:        model,
		connectionID: connectionID,
		startTime:    time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}
