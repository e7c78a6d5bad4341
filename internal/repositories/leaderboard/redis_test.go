package leaderboard

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	encoded := "Alice,260\n,0\nCarol,410\n,0\n"

	err := s.repo.Save(context.Background(), &SaveInput{
		Encoded: encoded,
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out)

	s.Equal(encoded, out.Encoded)
}

func (s *RedisRepositoryTestSuite) TestSave_ReplacesContents() {
	err := s.repo.Save(context.Background(), &SaveInput{Encoded: "Alice,300\n"})
	s.Require().NoError(err)

	err = s.repo.Save(context.Background(), &SaveInput{Encoded: "Alice,250\n"})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)

	s.Equal("Alice,250\n", out.Encoded)
}

func (s *RedisRepositoryTestSuite) TestLoad_NotFound() {
	_, err := s.repo.Load(context.Background(), &LoadInput{})

	s.ErrorIs(err, ErrLeaderboardNotFound)
}
