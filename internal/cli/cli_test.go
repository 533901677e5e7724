package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giopellizzoni/contacts"
)

const body = `{"employees": [
	{"name": "Ann", "lname": "Lee", "contact_details": {"email": "a@x.com", "phone": "123"}, "position": "Eng", "projects": "X"},
	{"name": "Bob", "lname": "Ray", "contact_details": {"email": "b@x.com"}, "position": "PM"}
]}`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newServer(t *testing.T, status int, payload string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestLoadCommand(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		server := newServer(t, http.StatusOK, body)

		stdout, _, err := runCLI(t, "load", "--url", server.URL)

		require.NoError(t, err)
		assert.Contains(t, stdout, "NAME")
		assert.Contains(t, stdout, "Ann Lee")
		assert.Contains(t, stdout, "b@x.com")
		assert.Less(t, bytes.Index([]byte(stdout), []byte("Ann Lee")), bytes.Index([]byte(stdout), []byte("Bob Ray")), "Server order must be kept")
	})

	t.Run("JSON", func(t *testing.T) {
		server := newServer(t, http.StatusOK, body)

		stdout, _, err := runCLI(t, "load", "--url", server.URL, "-o", "json")

		require.NoError(t, err)
		assert.JSONEq(t, body, stdout, "JSON output must use the server wire format")
	})

	t.Run("InvalidData", func(t *testing.T) {
		server := newServer(t, http.StatusInternalServerError, body)

		_, _, err := runCLI(t, "load", "--url", server.URL)

		assert.ErrorIs(t, err, contacts.ErrInvalidData)
	})

	t.Run("Connectivity", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, _, err := runCLI(t, "load", "--url", url)

		assert.ErrorIs(t, err, contacts.ErrConnectivity)
	})

	t.Run("InvalidOutput", func(t *testing.T) {
		_, _, err := runCLI(t, "load", "--url", "http://127.0.0.1", "-o", "xml")

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		server := newServer(t, http.StatusOK, body)

		path := filepath.Join(t.TempDir(), "contacts.yaml")
		cfg := "url: " + server.URL + "\noutput: json\nhttp:\n  timeout: 5s\n"
		require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

		stdout, _, err := runCLI(t, "--config", path, "load")

		require.NoError(t, err)
		assert.JSONEq(t, body, stdout)
	})

	t.Run("DebugLogging", func(t *testing.T) {
		server := newServer(t, http.StatusOK, body)

		_, stderr, err := runCLI(t, "--debug", "load", "--url", server.URL)

		require.NoError(t, err)
		assert.Contains(t, stderr, "load.requested")
		assert.Contains(t, stderr, "load.delivered")
	})
}

func TestSnapshotCommandRequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "snapshot", "--city", "tartu")

	assert.Error(t, err)
}

func TestSnapshotCommandRejectsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, _, err := runCLI(t, "snapshot", "--city", "tartu", "--file", path, "--source", "http")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --source", "Snapshots always go to redis")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.NoError(t, cfg.Validate())

		url, err := cfg.ResolveURL()
		require.NoError(t, err)
		assert.Equal(t, "https://tallinn-jobapp.aw.ee/employee_list", url)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		content := "city: tartu\nsource: redis\nredis:\n  addr: cache:6379\n  prefix: mirror::\nhttp:\n  timeout: 2s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, SourceRedis, cfg.Source)
		assert.Equal(t, OutputTable, cfg.Output, "Unset members keep their defaults")
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
		assert.Equal(t, "mirror::", cfg.Redis.Prefix)
		assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout)

		url, err := cfg.ResolveURL()
		require.NoError(t, err)
		assert.Equal(t, "https://tartu-jobapp.aw.ee/employee_list", url)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		require.NoError(t, os.WriteFile(path, []byte("source: [http"), 0o600))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "Unknown source", mutate: func(c *Config) { c.Source = "ftp" }},
		{name: "Unknown output", mutate: func(c *Config) { c.Output = "xml" }},
		{name: "Unknown city", mutate: func(c *Config) { c.City = "riga" }},
		{name: "Redis without addr", mutate: func(c *Config) { c.Source = SourceRedis; c.Redis.Addr = "" }},
		{name: "Negative timeout", mutate: func(c *Config) { c.HTTP.Timeout = -time.Second }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.City = "riga"
	cfg.URL = "https://example.com/employee_list"
	assert.NoError(t, cfg.Validate(), "An explicit url wins over the city preset")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, render(&buf, OutputTable, []contacts.Employee{}))
	assert.Equal(t, "NAME  POSITION  EMAIL  PHONE  PROJECTS\n", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, OutputJSON, []contacts.Employee{}))
	assert.JSONEq(t, `{"employees": []}`, buf.String())
}
