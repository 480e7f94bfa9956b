package aliasresolution

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/core/testutil"
	"github.com/AntonioJCosta/sitealias/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalSource() *testutil.MockDefinitionSource {
	return &testutil.MockDefinitionSource{
		LoadRecordsFunc: func() ([]alias.Record, error) {
			return []alias.Record{
				{Name: "dev", Parent: "mysite.dev", URI: "dev.SUBDOMAIN.mysite.com"},
				{Name: "stage", Parent: "mysite.stage", URI: "stage.SUBDOMAIN.mysite.com"},
				{
					Name: "prod", Parent: "mysite.prod", URI: "SUBDOMAIN.mysite.com",
					CommandOverrides: map[string]map[string]string{
						"sql-sync": {"simulate": "1"},
						"rsync":    {"simulate": "1"},
					},
				},
			}, nil
		},
		DescribeFunc: func() string { return "canonical" },
	}
}

func TestNewService(t *testing.T) {
	t.Run("should load the table once", func(t *testing.T) {
		src := canonicalSource()
		svc, err := NewService(src)
		require.NoError(t, err)
		require.NotNil(t, svc)

		_ = svc.Names()
		_, _ = svc.Lookup("dev")
		assert.Equal(t, 1, src.LoadCalls)
		assert.Equal(t, "canonical", svc.Source())
	})

	t.Run("should panic if source is nil", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = NewService(nil) })
	})

	t.Run("should wrap source errors", func(t *testing.T) {
		readErr := errors.New("disk on fire")
		src := &testutil.MockDefinitionSource{
			LoadRecordsFunc: func() ([]alias.Record, error) { return nil, readErr },
		}
		svc, err := NewService(src)
		require.ErrorIs(t, err, readErr)
		assert.Nil(t, svc)
	})

	t.Run("should reject duplicate names", func(t *testing.T) {
		src := &testutil.MockDefinitionSource{
			LoadRecordsFunc: func() ([]alias.Record, error) {
				return []alias.Record{
					{Name: "dev", Parent: "a.dev", URI: "dev.SUBDOMAIN.a.com"},
					{Name: "dev", Parent: "a.dev", URI: "dev.SUBDOMAIN.a.com"},
				}, nil
			},
		}
		svc, err := NewService(src)
		require.ErrorIs(t, err, alias.ErrMalformedDefinition)
		assert.Nil(t, svc)
	})
}

func TestService_Queries(t *testing.T) {
	svc, err := NewService(canonicalSource())
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "prod", "stage"}, svc.Names())
	assert.Len(t, svc.Records(), 3)

	uri, err := svc.ResolveURI("dev", "example")
	require.NoError(t, err)
	assert.Equal(t, "dev.example.mysite.com", uri)

	uri, err = svc.ResolveURI("prod", "example")
	require.NoError(t, err)
	assert.Equal(t, "example.mysite.com", uri)

	prod, err := svc.Lookup("prod")
	require.NoError(t, err)
	assert.Equal(t, "1", prod.CommandOverrides["sql-sync"]["simulate"])
	assert.Equal(t, "1", prod.CommandOverrides["rsync"]["simulate"])

	opts, err := svc.CommandOptions("prod", "sql-sync")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"simulate": "1"}, opts)

	_, err = svc.Lookup("staging")
	assert.ErrorIs(t, err, alias.ErrUnknownAlias)
	_, err = svc.ResolveURI("staging", "example")
	assert.ErrorIs(t, err, alias.ErrUnknownAlias)
}

func TestService_ResolveURI_EmptySubdomainWarns(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logging.Init("warn", "text", &buf)

	svc, err := NewService(canonicalSource())
	require.NoError(t, err)

	uri, err := svc.ResolveURI("prod", "example")
	require.NoError(t, err)
	assert.Equal(t, "example.mysite.com", uri)
	assert.Empty(t, buf.String())

	uri, err = svc.ResolveURI("dev", "")
	require.NoError(t, err)
	assert.Equal(t, "dev..mysite.com", uri)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "resolving uri with empty subdomain")
	assert.Contains(t, buf.String(), "alias=dev")
}
