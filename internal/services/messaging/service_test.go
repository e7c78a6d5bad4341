package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// fakeClient records what the hub sends it and can be told to fail
type fakeClient struct {
	id     string
	sent   []string
	broken bool
}

func (c *fakeClient) ID() string {
	return c.id
}

func (c *fakeClient) Send(text string) error {
	if c.broken {
		return errors.New("connection reset")
	}
	c.sent = append(c.sent, text)
	return nil
}

type hubSuite struct {
	suite.Suite
	hub Service
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(hubSuite))
}

func (s *hubSuite) SetupTest() {
	hub, err := NewService(&Config{})
	s.Require().NoError(err)
	s.hub = hub
}

func (s *hubSuite) TestAnnounce_ReachesAllClients() {
	a := &fakeClient{id: "a"}
	b := &fakeClient{id: "b"}
	s.hub.Register(a)
	s.hub.Register(b)

	s.hub.Announce("Game result: \n")

	s.Equal([]string{"Game result: \n"}, a.sent)
	s.Equal([]string{"Game result: \n"}, b.sent)
}

func (s *hubSuite) TestAnnounce_DropsBrokenClients() {
	ok := &fakeClient{id: "ok"}
	bad := &fakeClient{id: "bad", broken: true}
	s.hub.Register(ok)
	s.hub.Register(bad)
	s.Require().Equal(2, s.hub.ClientCount())

	s.hub.Announce("hello")

	s.Equal(1, s.hub.ClientCount())
	s.Equal([]string{"hello"}, ok.sent)
}

func (s *hubSuite) TestUnregister_UnknownIDIsHarmless() {
	s.hub.Unregister("missing")
	s.Equal(0, s.hub.ClientCount())
}

func (s *hubSuite) TestRegister_ReplacesSameID() {
	first := &fakeClient{id: "dup"}
	second := &fakeClient{id: "dup"}
	s.hub.Register(first)
	s.hub.Register(second)

	s.Equal(1, s.hub.ClientCount())

	s.hub.Announce("ping")
	s.Empty(first.sent)
	s.Equal([]string{"ping"}, second.sent)
}
