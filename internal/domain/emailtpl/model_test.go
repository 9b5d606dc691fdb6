package emailtpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tpl := EmailTemplate{
		Subject: "Welcome, {{name}}",
		HTML:    `<a href="{{link}}">{{name}}</a> code: {{token}}`,
	}

	subject, html := tpl.Render(map[string]string{
		"name": "Ada",
		"link": "https://toadtoe.online",
	})

	assert.Equal(t, "Welcome, Ada", subject)
	assert.Contains(t, html, `href="https://toadtoe.online"`)
	assert.Contains(t, html, ">Ada<")
	// unknown placeholders stay put
	assert.Contains(t, html, "{{token}}")
}
