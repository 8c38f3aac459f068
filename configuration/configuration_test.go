package configuration_test

import (
	"encoding/json"
	"os"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/wordsmith/lexicon/configuration"
)

func tempFile(t *testing.T, pattern string, content []byte) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.String("dictionary.seedFile", "Words.txt", "test")
	require.NoError(t, testFlagSet.Parse([]string{"--dictionary.seedFile=seed.txt"}))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "seed.txt", config.String("dictionary.seedFile"))
	require.Equal(t, "seed.txt", config.String("dictionary.seedfile"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.Equal(t, "321", config.String("B"))

	_, exists := config.All()["c"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	content, err := json.MarshalIndent(map[string]map[string]string{
		"Logger": {"Level": "debug"},
	}, "", "    ")
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(tempFile(t, "config*.json", content)))

	require.Equal(t, "debug", config.String("logger.level"))
	require.True(t, config.Exists("LOGGER.LEVEL"))
}

func TestFetchYAMLFile(t *testing.T) {
	content, err := yaml.Marshal(map[string]interface{}{
		"dictionary": map[string]interface{}{"seedFile": "words.txt"},
		"D":          321,
	})
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(tempFile(t, "config*.yaml", content)))

	require.Equal(t, "321", config.String("D"))
	require.Equal(t, "words.txt", config.String("dictionary.seedFile"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile("does-not-exist.json")
	require.True(t, ierrors.Is(err, os.ErrNotExist))

	err = config.LoadFile(tempFile(t, "config*.toml", []byte("a = 1")))
	require.True(t, ierrors.Is(err, configuration.ErrUnknownConfigFormat))
}

func TestMergeParameters(t *testing.T) {
	content, err := json.MarshalIndent(map[string]int{"E": 321}, "", "    ")
	require.NoError(t, err)

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("F", 321, "test")

	t.Setenv("TEST_F", "322")

	config := configuration.New()
	require.NoError(t, config.LoadFile(tempFile(t, "config*.json", content)))
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	var exists bool

	_, exists = config.All()["e"]
	require.True(t, exists, "expected read config value to exist")

	// all keys should be lower cased
	_, exists = config.All()["E"]
	require.False(t, exists, "expected read config value to not exist")

	_, exists = config.All()["f"]
	require.True(t, exists, "expected read config value to exist")

	require.Equal(t, "321", config.String("E"))
	require.Equal(t, "322", config.String("F"))
}

func TestUnmarshal(t *testing.T) {
	content, err := yaml.Marshal(map[string]interface{}{
		"logger": map[string]interface{}{
			"level":       "warn",
			"outputPaths": []string{"stdout", "lexicon.log"},
		},
	})
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(tempFile(t, "config*.yml", content)))

	var loggerConfig struct {
		Level       string   `koanf:"level"`
		OutputPaths []string `koanf:"outputpaths"`
	}
	require.NoError(t, config.Unmarshal("logger", &loggerConfig))

	require.Equal(t, "warn", loggerConfig.Level)
	require.Equal(t, []string{"stdout", "lexicon.log"}, loggerConfig.OutputPaths)
}
