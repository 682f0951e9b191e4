package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name string
		form any
		want []string
	}{
		{name: "login ok", form: loginForm{Email: "a@x.io", Password: []byte("x")}},
		{name: "login bad email", form: loginForm{Email: "nope", Password: []byte("x")},
			want: []string{"Email must be a valid email address"}},
		{name: "login empty", form: loginForm{},
			want: []string{"Email is required", "Password is required"}},
		{name: "register ok", form: registerForm{Username: "ana", Email: "a@x.io", Password: []byte("secret")}},
		{name: "register short password", form: registerForm{Username: "ana", Email: "a@x.io", Password: []byte("12345")},
			want: []string{"Password must be at least 6 characters"}},
		{name: "register missing username", form: registerForm{Email: "a@x.io", Password: []byte("secret")},
			want: []string{"Username is required"}},
		{name: "edit too long", form: editForm{Username: string(make([]byte, 65))},
			want: []string{"Username must be at most 64 characters"}},
		{name: "delete empty", form: deleteForm{}, want: []string{"Password is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateForm(tt.form))
		})
	}
}
