// Package botinfo holds the branding of the bot that is shown in /about, the intake panel and the presence.
package botinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file that is read when no other path is given.
const DefaultPath = "botinfo.yaml"

// Creator is the author of the bot.
type Creator struct {
	Name      string `yaml:"name"`
	DiscordID string `yaml:"discord_id"`
	GitHub    string `yaml:"github"`
	Website   string `yaml:"website"`
}

// Info is the branding of the bot.
type Info struct {
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	Creator       Creator `yaml:"creator"`
	SupportServer string  `yaml:"support_server"`
	InviteURL     string  `yaml:"invite_url"`

	// Presence is the text shown after "Watching".
	Presence string `yaml:"presence"`
}

// Default returns the branding that is used when no file is provided.
func Default() *Info {
	return &Info{
		Name:        "Artemis Ticket Bot",
		Description: "A powerful ticket management system for Discord servers",
		Creator: Creator{
			Name:      "at.9",
			DiscordID: "547451355179253760",
			GitHub:    "https://github.com/AX9zz",
			Website:   "https://guns.lol/AX9",
		},
		SupportServer: "https://discord.gg/ubm9msKS",
		InviteURL:     "https://discord.com/oauth2/authorize?client_id=YOUR_CLIENT_ID&permissions=8&scope=bot",
		Presence:      "tickets • /help",
	}
}

// Load reads the branding from a YAML file. A missing file yields the defaults, and any field left out of the
// file keeps its default.
func Load(path string) (*Info, error) {
	info := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return info, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading bot info file: %w", err)
	}

	if err := yaml.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("error parsing bot info file %s: %w", path, err)
	}

	info.fill(Default())
	return info, nil
}

// fill replaces blank fields with the values in def.
func (i *Info) fill(def *Info) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}

	set(&i.Name, def.Name)
	set(&i.Description, def.Description)
	set(&i.Creator.Name, def.Creator.Name)
	set(&i.Creator.DiscordID, def.Creator.DiscordID)
	set(&i.Creator.GitHub, def.Creator.GitHub)
	set(&i.Creator.Website, def.Creator.Website)
	set(&i.SupportServer, def.SupportServer)
	set(&i.InviteURL, def.InviteURL)
	set(&i.Presence, def.Presence)
}

// InviteFor returns the invite URL with the client ID placeholder replaced by the application ID.
func (i *Info) InviteFor(applicationID string) string {
	if applicationID == "" {
		return i.InviteURL
	}
	return strings.ReplaceAll(i.InviteURL, "YOUR_CLIENT_ID", applicationID)
}
