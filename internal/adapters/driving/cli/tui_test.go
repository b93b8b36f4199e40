package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui [image]", tuiCmd.Use)
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_AcceptsOneImage(t *testing.T) {
	assert.NoError(t, tuiCmd.Args(tuiCmd, []string{"photo.png"}))
	assert.Error(t, tuiCmd.Args(tuiCmd, []string{"a.png", "b.png"}))
}

func TestBuildTUIPorts(t *testing.T) {
	var interactive []bool
	session := &mockSession{}
	svc := newTestServices(session)
	base := svc.NewSession
	svc.NewSession = func(i bool) driving.SessionService {
		interactive = append(interactive, i)
		return base(i)
	}

	ports := buildTUIPorts(svc)

	require.NoError(t, ports.Validate())
	assert.Same(t, session, ports.Session)
	assert.Equal(t, svc.Settings, ports.Settings)
	assert.NotNil(t, ports.Watcher)
	assert.Equal(t, []bool{false}, interactive)
}

func TestBuildTUIPorts_NoSession(t *testing.T) {
	svc := newTestServices(&mockSession{})
	svc.NewSession = nil

	ports := buildTUIPorts(svc)

	assert.ErrorIs(t, ports.Validate(), tui.ErrMissingSessionService)
}
