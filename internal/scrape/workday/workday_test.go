package workday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantRoot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://acme.wd5.myworkdayjobs.com/External/job/NYC/Engineer_R1", "https://acme.wd5.myworkdayjobs.com/External"},
		{"https://acme.wd5.myworkdayjobs.com/External/JOB/NYC/Engineer_R1", "https://acme.wd5.myworkdayjobs.com/External"},
		{"https://acme.wd5.myworkdayjobs.com/External/", "https://acme.wd5.myworkdayjobs.com/External"},
		{"https://acme.wd5.myworkdayjobs.com/External", "https://acme.wd5.myworkdayjobs.com/External"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TenantRoot(tt.in), "TenantRoot(%q)", tt.in)
	}
}

func TestMatch(t *testing.T) {
	a := New()
	assert.True(t, a.Match("https://acme.wd5.myworkdayjobs.com/external", ""))
	assert.True(t, a.Match("https://careers.example.com/x", "https://acme.wd5.myworkdayjobs.com/external"))
	assert.True(t, a.Match("https://www.oneoncology.com/careers", "https://www.oneoncology.com/careers"))
	assert.False(t, a.Match("https://boards.greenhouse.io/acme", "https://boards.greenhouse.io/acme"))
}
