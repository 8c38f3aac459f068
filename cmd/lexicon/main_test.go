package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wordsmith/lexicon/dictionary"
)

func TestLoadSeed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	seedFile := filepath.Join(t.TempDir(), "Words.txt")
	seed := "cat:a feline\nlong:" + strings.Repeat("x", 70*1024) + "\nbroken:\ndog:a canine\n"
	require.NoError(t, os.WriteFile(seedFile, []byte(seed), 0o600))

	dict := dictionary.New()
	loadSeed(log, dict, seedFile)

	require.Equal(t, 3, dict.Count())
	require.True(t, dict.Exists("dog"))

	malformed := logs.FilterMessage("seed file contains malformed lines").All()
	require.Len(t, malformed, 1)
	require.Equal(t, []interface{}{3}, malformed[0].ContextMap()["lines"])

	loadSeed(log, dictionary.New(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, 1, logs.FilterMessage("seed file could not be read, starting with an empty dictionary").Len())
}

func TestLogStats(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	dict := dictionary.New()
	require.True(t, dict.Add("cat", "a feline"))
	require.False(t, dict.Add("cat", "a lion"))
	require.True(t, dict.Exists("cat"))
	require.False(t, dict.Exists("dog"))
	require.NoError(t, dict.Delete("cat"))

	logStats(zap.New(core).Sugar(), dict.Stats())

	entries := logs.FilterMessage("dictionary statistics").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, int64(2), fields["lookups"])
	require.Equal(t, int64(1), fields["hits"])
	require.Equal(t, int64(1), fields["misses"])
	require.Equal(t, int64(1), fields["inserts"])
	require.Equal(t, int64(1), fields["rejectedInserts"])
	require.Equal(t, int64(1), fields["removals"])
}
