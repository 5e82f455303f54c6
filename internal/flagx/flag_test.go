package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-c", "conf.json", "-a", ":8080"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", ":8080"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "order preserved across forms",
			args:    []string{"-config=first.json", "-c", "second.json", "-x", "1"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=first.json", "-c", "second.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c", "-config"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-notvalue"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several allowed flags",
			args:    []string{"-a", "http://localhost:8080", "-c", "conf.json", "--other", "x"},
			allowed: []string{"-c", "-a"},
			want:    []string{"-a", "http://localhost:8080", "-c", "conf.json"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "repeated flag kept in order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("absent flag yields empty string", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
