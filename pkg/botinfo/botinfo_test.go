package botinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	info, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), info)
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "botinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Hermes
creator:
  name: someone
presence: "support • /setup"
`), 0o600))

	info, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Hermes", info.Name)
	require.Equal(t, "someone", info.Creator.Name)
	require.Equal(t, "support • /setup", info.Presence)

	def := Default()
	require.Equal(t, def.Creator.DiscordID, info.Creator.DiscordID)
	require.Equal(t, def.SupportServer, info.SupportServer)
	require.Equal(t, def.Description, info.Description)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "botinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestInfo_InviteFor(t *testing.T) {
	info := Default()
	require.Equal(t, "https://discord.com/oauth2/authorize?client_id=123&permissions=8&scope=bot", info.InviteFor("123"))
	require.Equal(t, info.InviteURL, info.InviteFor(""))
}
