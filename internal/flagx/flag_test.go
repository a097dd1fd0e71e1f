package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFilter(t *testing.T) {
	server := Set{Value: []string{"-a", "-d", "-s3-bucket"}}
	client := Set{Value: []string{"-a", "-n", "-o"}, Bool: []string{"-tui"}}

	tests := []struct {
		name string
		set  Set
		args []string
		want []string
	}{
		{
			name: "owned value flags keep their values",
			set:  server,
			args: []string{"-a", ":50051", "-d", "postgres://portal", "-n", "10"},
			want: []string{"-a", ":50051", "-d", "postgres://portal"},
		},
		{
			name: "equals form",
			set:  server,
			args: []string{"-s3-bucket=certificates", "-c=cfg.json"},
			want: []string{"-s3-bucket=certificates"},
		},
		{
			name: "client and server sets split the same args",
			set:  client,
			args: []string{"-a", "127.0.0.1:50051", "-d", "postgres://portal", "-tui", "-n", "50"},
			want: []string{"-a", "127.0.0.1:50051", "-tui", "-n", "50"},
		},
		{
			name: "value flag at the end",
			set:  client,
			args: []string{"-o"},
			want: []string{"-o"},
		},
		{
			name: "dash-prefixed token is not taken as a value",
			set:  client,
			args: []string{"-o", "-tui"},
			want: []string{"-o", "-tui"},
		},
		{
			name: "positional arguments are dropped",
			set:  client,
			args: []string{"login", "-n", "5", "ada@portal.io"},
			want: []string{"-n", "5"},
		},
		{
			name: "repeated flags stay in order",
			set:  server,
			args: []string{"-a", ":1", "-a", ":2"},
			want: []string{"-a", ":1", "-a", ":2"},
		},
		{
			name: "empty",
			set:  server,
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Filter(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFilterArgs_ValueFlagsOnly(t *testing.T) {
	got := FilterArgs([]string{"--config=alt.json", "-c", "conf.json", "-x", "1"}, []string{"-c", "--config"})
	assert.Equal(t, []string{"--config=alt.json", "-c", "conf.json"}, got)
}

func TestSetFilter_BoolFlags(t *testing.T) {
	s := Set{Value: []string{"-a"}, Bool: []string{"-tui"}}

	got := s.Filter([]string{"-tui", "-a", "host:1", "-tui=false", "-x", "positional", "-a=other"})
	assert.Equal(t, []string{"-tui", "-a", "host:1", "-tui=false", "-a=other"}, got)

	// A bool flag does not swallow the next token.
	got = s.Filter([]string{"-tui", "host:1"})
	assert.Equal(t, []string{"-tui"}, got)
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigPath([]string{"-l", "zap", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-config=b.json"}))
	assert.Empty(t, ConfigPath(nil))
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
