package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelPath(t *testing.T) {
	t.Setenv("HOME", "/home/analyst")
	t.Setenv("XDG_DATA_HOME", "")

	tests := []struct {
		name       string
		configured string
		dataHome   string
		want       string
	}{
		{
			name: "default under home",
			want: "/home/analyst/.local/share/fraudscope/model.json",
		},
		{
			name:     "xdg data home wins",
			dataHome: "/var/data",
			want:     "/var/data/fraudscope/model.json",
		},
		{
			name:       "explicit path",
			configured: "/opt/models/fraud.json",
			want:       "/opt/models/fraud.json",
		},
		{
			name:       "explicit path with tilde",
			configured: "~/models/fraud.json",
			want:       "/home/analyst/models/fraud.json",
		},
		{
			name:       "explicit path with env var",
			configured: "$HOME/fraud.json",
			want:       "/home/analyst/fraud.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_DATA_HOME", tt.dataHome)
			assert.Equal(t, tt.want, ModelPath(tt.configured))
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("HOME", "/home/analyst")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/analyst", ".config", "fraudscope"), dir)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/analyst")
	t.Setenv("FRAUDSCOPE_DATA", "/srv/fraudscope")

	assert.Equal(t, "/home/analyst", ExpandPath("~"))
	assert.Equal(t, "/home/analyst/model.json", ExpandPath("~/model.json"))
	assert.Equal(t, "/srv/fraudscope/model.json", ExpandPath("$FRAUDSCOPE_DATA/model.json"))
	assert.Equal(t, "", ExpandPath(""))
}
