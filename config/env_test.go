package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name string
		ci   string
		env  string
		want Environment
	}{
		{"default is development", "", "", Development},
		{"production", "", "production", Production},
		{"test", "", "test", Test},
		{"ci wins", "true", "production", CI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("ENV", tt.env)
			assert.Equal(t, tt.want, GetEnvironment())
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.True(t, IsDevelopment())
	assert.False(t, IsProduction())
}
