package tui

import (
	"github.com/adenikin/go-note-keeper/internal/crypto"
	"github.com/adenikin/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	cipher  crypto.ContentCipher
	userID  int64
	notes   []models.Note
	idx     int
	loading bool
	syncing bool
	status  string
	spinner spinner.Model
}

func newListModel(cipher crypto.ContentCipher) listModel {
	return listModel{
		cipher:  cipher,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m listModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) View() string {
	out := titleStyle.Render("Заметки") + "\n\n"

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.notes) == 0:
		out += "Пока нет ни одной заметки. Нажмите n, чтобы создать.\n"
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := "  "
			if m.cipher.IsEncryptedContent(note.Content) {
				marker = "🔒 "
			}
			out += cursor + marker + fitText(note.Title, 48) + "\n"
		}
	}

	out += "\n"
	if m.syncing {
		out += m.spinner.View() + " синхронизация...\n"
	}
	if m.status != "" {
		out += m.status + "\n"
	}
	out += helpStyle.Render("enter открыть   n новая   e изменить   d удалить   s синхронизация   l выход из аккаунта   q выход")
	return out
}
