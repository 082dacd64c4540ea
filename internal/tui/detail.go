package tui

import (
	"strings"

	"github.com/adenikin/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// detailModel shows a single note. A passphrase-protected note starts locked:
// the view asks for the passphrase and the body stays hidden until the
// service decrypts it.
type detailModel struct {
	note       models.Note
	locked     bool
	unlocking  bool
	passInput  textinput.Model
	passphrase string // passphrase that unlocked the note, reused on edit
	content    string
	status     string
}

func newDetailModel(note models.Note, locked bool) detailModel {
	pass := textinput.New()
	pass.Placeholder = "парольная фраза"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	if locked {
		pass.Focus()
	}

	m := detailModel{note: note, locked: locked, passInput: pass}
	if !locked {
		m.content = note.Content
	}
	return m
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.note.Title) + "\n\n"

	if m.locked {
		out += "Заметка защищена парольной фразой.\n\n"
		out += "Фраза: " + m.passInput.View() + "\n\n"
		if m.unlocking {
			out += "Расшифровка...\n\n"
		}
		out += helpStyle.Render("enter открыть   esc назад")
		return out
	}

	body := m.content
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	out += body + "\n\n"
	if m.status != "" {
		out += m.status + "\n"
	}
	out += helpStyle.Render("c копировать   e изменить   d удалить   esc назад")
	return out
}
