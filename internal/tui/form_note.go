package tui

import (
	"github.com/adenikin/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	formFocusTitle = iota
	formFocusContent
	formFocusPassphrase
	formFocusCount
)

// formNoteModel is the create/edit screen. The passphrase field is optional:
// an empty value keeps the note in plain text, a non-empty one protects the
// body. Weak phrases produce a warning but are accepted.
type formNoteModel struct {
	title      textinput.Model
	content    textarea.Model
	passphrase textinput.Model

	focus      int
	editing    bool
	original   models.Note // заполнено только при редактировании
	warning    string
	submitting bool
}

func newFormNoteModel(original *models.Note, decryptedContent, passphrase string) formNoteModel {
	title := textinput.New()
	title.Placeholder = "заголовок"
	title.Focus()

	content := textarea.New()
	content.Placeholder = "текст заметки"

	pass := textinput.New()
	pass.Placeholder = "парольная фраза (пусто — без защиты)"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	m := formNoteModel{title: title, content: content, passphrase: pass}
	if original != nil {
		m.editing = true
		m.original = *original
		m.title.SetValue(original.Title)
		m.content.SetValue(decryptedContent)
		m.passphrase.SetValue(passphrase)
	}
	return m
}

func (m formNoteModel) View() string {
	header := "Новая заметка"
	if m.editing {
		header = "Изменение заметки"
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Заголовок: " + m.title.View() + "\n\n"
	out += m.content.View() + "\n\n"
	out += "Защита:    " + m.passphrase.View() + "\n"
	if m.warning != "" {
		out += errorStyle.Render("⚠ "+m.warning) + "\n"
	}
	out += "\n"
	if m.submitting {
		out += "Сохранение...\n\n"
	}
	out += helpStyle.Render("ctrl+s сохранить   tab поле   esc отмена")
	return out
}

func (m *formNoteModel) setFocus(focus int) {
	m.focus = focus
	m.title.Blur()
	m.content.Blur()
	m.passphrase.Blur()

	switch focus {
	case formFocusTitle:
		m.title.Focus()
	case formFocusContent:
		m.content.Focus()
	case formFocusPassphrase:
		m.passphrase.Focus()
	}
}
