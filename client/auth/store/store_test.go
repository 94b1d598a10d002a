package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Configure(t *testing.T) {
	testCases := []struct {
		description string
		partials    []Config
		expect      Config
	}{
		{
			description: "merge keeps earlier fields",
			partials:    []Config{{Token: "a"}, {BaseURL: "b"}},
			expect:      Config{Token: "a", BaseURL: "b"},
		},
		{
			description: "later value wins",
			partials:    []Config{{Token: "a", APIKey: "k"}, {Token: "c"}},
			expect:      Config{Token: "c", APIKey: "k"},
		},
		{
			description: "empty partial is a no-op",
			partials:    []Config{{BaseURL: "http://h:3001"}, {}},
			expect:      Config{BaseURL: "http://h:3001"},
		},
	}
	for _, testCase := range testCases {
		s := NewMemoryStore()
		for _, partial := range testCase.partials {
			s.Configure(partial)
		}
		assert.Equal(t, testCase.expect, s.Config(), testCase.description)
	}
}

func TestMemoryStore_ConfigIsSnapshot(t *testing.T) {
	s := NewMemoryStore(WithConfig(Config{Token: "t"}))
	snapshot := s.Config()
	snapshot.Token = "mutated"
	assert.Equal(t, "t", s.Config().Token)
}

func TestMemoryStore_Clear(t *testing.T) {
	expired := 0
	s := NewMemoryStore(
		WithConfig(Config{BaseURL: "b", APIKey: "k", Token: "t"}),
		WithRefreshHandler(func(ctx context.Context) (string, error) { return "t2", nil }),
		WithAuthExpiredCallback(func() { expired++ }),
	)
	s.Clear()
	assert.True(t, s.Config().IsZero())
	assert.Nil(t, s.RefreshHandler())
	callback := s.AuthExpiredCallback()
	if assert.NotNil(t, callback) {
		callback()
	}
	assert.Equal(t, 1, expired)
}

func TestMemoryStore_Registrations(t *testing.T) {
	s := NewMemoryStore()
	assert.Nil(t, s.RefreshHandler())
	first := func(ctx context.Context) (string, error) { return "first", nil }
	second := func(ctx context.Context) (string, error) { return "second", nil }
	s.SetRefreshHandler(first)
	s.SetRefreshHandler(second)
	token, err := s.RefreshHandler()(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "second", token)

	s.SetRefreshHandler(nil)
	assert.Nil(t, s.RefreshHandler())

	s.SetAuthExpiredCallback(func() {})
	assert.NotNil(t, s.AuthExpiredCallback())
	s.SetAuthExpiredCallback(nil)
	assert.Nil(t, s.AuthExpiredCallback())
}
