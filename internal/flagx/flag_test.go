package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeep(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-a", "localhost:8080", "-x", "other"},
			flags: []string{"-a"},
			want:  []string{"-a", "localhost:8080"},
		},
		{
			name:  "equals form",
			args:  []string{"--config=conf.json", "-v"},
			flags: []string{"--config"},
			want:  []string{"--config=conf.json"},
		},
		{
			name:  "flag without value followed by another flag",
			args:  []string{"-a", "-b", "value"},
			flags: []string{"-a"},
			want:  []string{"-a"},
		},
		{
			name:  "nothing wanted",
			args:  []string{"-a", "1", "-b", "2"},
			flags: []string{"-z"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keep(tt.args, tt.flags...))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"client", "-a", "localhost:8080", "-c", "conf.json"}
	assert.Equal(t, "conf.json", ConfigFilePath())

	os.Args = []string{"client", "-a", "localhost:8080"}
	assert.Equal(t, "", ConfigFilePath())
}
