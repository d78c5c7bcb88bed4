package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates, keyed by name. They render the HTML bodies for the
// transactional messages the API sends.
var builtinTemplates = map[string]string{
	"password_reset": `
<h2>Recuperação de senha</h2>
<p>Olá, {{.Name}}!</p>
<p>Recebemos um pedido para redefinir a sua senha. Use o código abaixo no aplicativo:</p>
<p style="font-size:20px;font-weight:bold;letter-spacing:2px">{{.Token}}</p>
<p>O código expira em {{.ExpiryMinutes}} minutos. Se você não pediu a redefinição, ignore este e-mail.</p>
`,
	"welcome": `
<h2>Bem-vindo à PetTime!</h2>
<p>Olá, {{.Name}}!</p>
<p>Sua conta foi criada. Agora você pode cadastrar seus pets e agendar banho e tosa pelo aplicativo.</p>
`,
}

// Renderer renders named HTML templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	root := template.New("email")
	for name, body := range builtinTemplates {
		if _, err := root.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return &Renderer{templates: root}, nil
}

func (r *Renderer) Render(name string, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
