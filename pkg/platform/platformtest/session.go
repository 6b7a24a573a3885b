// Package platformtest provides an in-memory Discord session for tests.
package platformtest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
)

// Operation names that can be made to fail with FailOn.
const (
	OpChannelCreate  = "channel_create"
	OpChannelEdit    = "channel_edit"
	OpPermissionSet  = "permission_set"
	OpMessageSend    = "message_send"
	OpChannelDelete  = "channel_delete"
	OpInteractionRsp = "interaction_respond"
)

// ErrUnknownChannel is returned for channels that do not exist.
var ErrUnknownChannel = errors.New("unknown channel")

// Response is an interaction response that was sent.
type Response struct {
	Interaction *discordgo.Interaction
	Response    *discordgo.InteractionResponse
}

// Session is a recording in-memory implementation of platform.Session.
type Session struct {
	mut sync.Mutex

	nextID    int
	channels  map[string]*discordgo.Channel
	guilds    map[string]*discordgo.Guild
	messages  map[string][]*discordgo.MessageSend
	responses []Response
	created   []string
	deleted   []string
	failures  map[string]error

	// Latency is returned by HeartbeatLatency.
	Latency time.Duration
}

var _ platform.Session = (*Session)(nil)

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		channels: make(map[string]*discordgo.Channel),
		guilds:   make(map[string]*discordgo.Guild),
		messages: make(map[string][]*discordgo.MessageSend),
		failures: make(map[string]error),
	}
}

// AddGuild registers a guild.
func (s *Session) AddGuild(g *discordgo.Guild) {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.guilds[g.ID] = g
}

// AddChannel registers an existing channel or category.
func (s *Session) AddChannel(c *discordgo.Channel) {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.channels[c.ID] = c
}

// FailOn makes every call of the operation return err. A nil err clears the failure.
func (s *Session) FailOn(op string, err error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// GetChannel returns a copy of a channel, or nil when it does not exist.
func (s *Session) GetChannel(id string) *discordgo.Channel {
	s.mut.Lock()
	defer s.mut.Unlock()
	c, ok := s.channels[id]
	if !ok {
		return nil
	}
	cp := *c
	cp.PermissionOverwrites = append([]*discordgo.PermissionOverwrite(nil), c.PermissionOverwrites...)
	return &cp
}

// Messages returns the messages sent to a channel.
func (s *Session) Messages(channelID string) []*discordgo.MessageSend {
	s.mut.Lock()
	defer s.mut.Unlock()
	return append([]*discordgo.MessageSend(nil), s.messages[channelID]...)
}

// Responses returns the interaction responses sent so far.
func (s *Session) Responses() []Response {
	s.mut.Lock()
	defer s.mut.Unlock()
	return append([]Response(nil), s.responses...)
}

// LastResponse returns the most recent interaction response, or nil.
func (s *Session) LastResponse() *discordgo.InteractionResponse {
	s.mut.Lock()
	defer s.mut.Unlock()
	if len(s.responses) == 0 {
		return nil
	}
	return s.responses[len(s.responses)-1].Response
}

// Created returns the IDs of the channels created through the session.
func (s *Session) Created() []string {
	s.mut.Lock()
	defer s.mut.Unlock()
	return append([]string(nil), s.created...)
}

// Deleted returns the IDs of the channels deleted through the session.
func (s *Session) Deleted() []string {
	s.mut.Lock()
	defer s.mut.Unlock()
	return append([]string(nil), s.deleted...)
}

func (s *Session) failure(op string) error {
	return s.failures[op]
}

func (s *Session) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpChannelCreate); err != nil {
		return nil, err
	}

	s.nextID++
	c := &discordgo.Channel{
		ID:                   fmt.Sprintf("channel-%d", s.nextID),
		GuildID:              guildID,
		Name:                 data.Name,
		Topic:                data.Topic,
		Type:                 data.Type,
		ParentID:             data.ParentID,
		PermissionOverwrites: append([]*discordgo.PermissionOverwrite(nil), data.PermissionOverwrites...),
	}
	s.channels[c.ID] = c
	s.created = append(s.created, c.ID)

	cp := *c
	return &cp, nil
}

func (s *Session) ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpChannelEdit); err != nil {
		return nil, err
	}

	c, ok := s.channels[channelID]
	if !ok {
		return nil, ErrUnknownChannel
	}
	if data.Name != "" {
		c.Name = data.Name
	}
	if data.ParentID != "" {
		c.ParentID = data.ParentID
	}

	cp := *c
	return &cp, nil
}

func (s *Session) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpPermissionSet); err != nil {
		return err
	}

	c, ok := s.channels[channelID]
	if !ok {
		return ErrUnknownChannel
	}

	overwrite := &discordgo.PermissionOverwrite{ID: targetID, Type: targetType, Allow: allow, Deny: deny}
	for idx, po := range c.PermissionOverwrites {
		if po.ID == targetID {
			c.PermissionOverwrites[idx] = overwrite
			return nil
		}
	}
	c.PermissionOverwrites = append(c.PermissionOverwrites, overwrite)
	return nil
}

func (s *Session) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpMessageSend); err != nil {
		return nil, err
	}

	if _, ok := s.channels[channelID]; !ok {
		return nil, ErrUnknownChannel
	}

	s.messages[channelID] = append(s.messages[channelID], data)
	s.nextID++
	return &discordgo.Message{
		ID:        fmt.Sprintf("message-%d", s.nextID),
		ChannelID: channelID,
		Content:   data.Content,
		Embeds:    data.Embeds,
	}, nil
}

func (s *Session) ChannelDelete(channelID string) (*discordgo.Channel, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpChannelDelete); err != nil {
		return nil, err
	}

	c, ok := s.channels[channelID]
	if !ok {
		return nil, ErrUnknownChannel
	}
	delete(s.channels, channelID)
	s.deleted = append(s.deleted, channelID)
	return c, nil
}

func (s *Session) Channel(channelID string) (*discordgo.Channel, error) {
	if c := s.GetChannel(channelID); c != nil {
		return c, nil
	}
	return nil, ErrUnknownChannel
}

func (s *Session) Guild(guildID string) (*discordgo.Guild, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	g, ok := s.guilds[guildID]
	if !ok {
		return nil, errors.New("unknown guild")
	}
	return g, nil
}

func (s *Session) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	if err := s.failure(OpInteractionRsp); err != nil {
		return err
	}
	s.responses = append(s.responses, Response{Interaction: interaction, Response: resp})
	return nil
}

func (s *Session) HeartbeatLatency() time.Duration {
	return s.Latency
}

func (s *Session) GuildCount() int {
	s.mut.Lock()
	defer s.mut.Unlock()
	return len(s.guilds)
}
