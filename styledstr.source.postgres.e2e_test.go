//go:build integration

package styledstr

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer creates an ephemeral PostgreSQL container for testing.
func setupPostgresContainer(t *testing.T) (*PostgresSource, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("styledstr_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	source, err := NewPostgresSource(PostgresSourceConfig{
		ConnectionString: connStr,
		AutoMigrate:      true,
		QueryTimeout:     30 * time.Second,
	})
	require.NoError(t, err, "failed to create postgres source")

	cleanup := func() {
		if source != nil {
			_ = source.Close()
		}
		if container != nil {
			_ = container.Terminate(ctx)
		}
	}

	return source, cleanup
}

func TestPostgres_E2E_Presets(t *testing.T) {
	source, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, source.Put(ctx, "en.yml", []byte("greeting: hi from yml\n")))
	require.NoError(t, source.Put(ctx, "en.yaml", []byte("greeting: hi $name$\n")))
	require.NoError(t, source.Put(ctx, "de.json", []byte(`{"greeting": "hallo $name$"}`)))

	t.Run("List", func(t *testing.T) {
		filenames, err := source.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"de.json", "en.yaml", "en.yml"}, filenames)
	})

	t.Run("Load by name", func(t *testing.T) {
		doc, err := source.Load(ctx, PresetRef("EN"))
		require.NoError(t, err)
		assert.Equal(t, "en.yaml", doc.Filename)
	})

	t.Run("Load by filename", func(t *testing.T) {
		doc, err := source.Load(ctx, PresetRef("en.yml"))
		require.NoError(t, err)

		text, err := doc.Lookup("greeting")
		require.NoError(t, err)
		assert.Equal(t, "hi from yml", text)
	})

	t.Run("Parser", func(t *testing.T) {
		parser := MustNew(WithSource(source), WithDefaultPreset("de"))
		assert.Equal(t, "hallo Ada", parser.Parse("greeting", Placeholders{"name": "Ada"}))
		assert.Equal(t, "hi Ada", parser.ParsePreset("greeting", PresetRef("en"), Placeholders{"name": "Ada"}))
	})

	t.Run("Put replaces content", func(t *testing.T) {
		require.NoError(t, source.Put(ctx, "de.json", []byte(`{"greeting": "servus"}`)))

		doc, err := source.Load(ctx, PresetRef("de"))
		require.NoError(t, err)
		text, err := doc.Lookup("greeting")
		require.NoError(t, err)
		assert.Equal(t, "servus", text)
	})

	t.Run("Put rejects non-preset filenames", func(t *testing.T) {
		err := source.Put(ctx, "notes.txt", []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidPresetFilename)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := source.Load(ctx, PresetRef("fr"))
		require.Error(t, err)
		assert.True(t, IsPresetFileError(err))
		assert.Contains(t, err.Error(), "postgres table styledstr_presets")

		_, err = source.Load(ctx, PresetRef("fr.yaml"))
		require.Error(t, err)
		assert.True(t, IsPresetFileError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, source.Delete(ctx, "en.yaml"))

		doc, err := source.Load(ctx, PresetRef("en"))
		require.NoError(t, err)
		assert.Equal(t, "en.yml", doc.Filename)

		err = source.Delete(ctx, "en.yaml")
		require.Error(t, err)
		assert.True(t, IsPresetFileError(err))
	})
}

func TestPostgres_E2E_Migrations(t *testing.T) {
	source, cleanup := setupPostgresContainer(t)
	defer cleanup()

	// Running again is a no-op
	require.NoError(t, source.RunMigrations(context.Background()))
}

func TestPostgres_E2E_Concurrent(t *testing.T) {
	source, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, source.Put(ctx, "default.yaml", []byte("greeting: hello\n")))
	parser := MustNew(WithSource(source))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "hello", parser.Parse("greeting", nil))
		}()
	}
	wg.Wait()
}

func TestPostgres_E2E_Closed(t *testing.T) {
	source, cleanup := setupPostgresContainer(t)
	defer cleanup()

	require.NoError(t, source.Close())

	_, err := source.Load(context.Background(), PresetRef("en"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSourceClosed)

	err = source.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresAlreadyClosed)
}
