package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirFlag(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "absent", args: []string{"task", "list"}, want: ""},
		{name: "separate value", args: []string{"--data-dir", "/tmp/desk", "task", "list"}, want: "/tmp/desk"},
		{name: "equals form", args: []string{"task", "list", "--data-dir=/srv/desk"}, want: "/srv/desk"},
		{name: "mixed with unknown flags", args: []string{"pay", "add", "--amount", "10", "--data-dir", "/d", "-c", "acme"}, want: "/d"},
		{name: "help", args: []string{"--help"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataDirFlag(tt.args))
		})
	}
}
