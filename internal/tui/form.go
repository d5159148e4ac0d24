package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

// form is a column of labelled text inputs with one focused input. Pages
// embed it and decide what enter does.
type form struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

func newForm(specs ...fieldSpec) form {
	f := form{
		labels: make([]string, len(specs)),
		inputs: make([]textinput.Model, len(specs)),
	}

	for i, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Width = 40
		in.CharLimit = 256
		if spec.limit > 0 {
			in.CharLimit = spec.limit
		}
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}

		f.labels[i] = spec.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}

	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

// handle moves the focus on tab keys and forwards everything else to the
// focused input.
func (f *form) handle(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// reset clears every input and the status lines.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	f.submitting = false
	f.errMsg = ""
	f.notice = ""
}

func (f *form) fail(err error) {
	f.submitting = false
	f.errMsg = humanizeError(err)
}

func (f *form) view(st styles, submit string) string {
	width := 0
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, l := range f.labels {
		marker := " "
		if i == f.focus {
			marker = st.cursor.Render(">")
		}
		b.WriteString(fmt.Sprintf("%s %s │ [%s]\n", marker, st.label.Render(fmt.Sprintf("%-*s", width, l)), f.inputs[i].View()))
	}

	if f.submitting {
		b.WriteString("\n[" + submit + "...]")
	} else {
		b.WriteString("\n[" + submit + "]")
	}
	b.WriteString(renderStatus(st, f.errMsg, f.notice))

	return b.String()
}
