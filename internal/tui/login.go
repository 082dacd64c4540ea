package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	login := textinput.New()
	login.Placeholder = "логин"
	login.Focus()

	pass := textinput.New()
	pass.Placeholder = "пароль"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return loginModel{inputs: []textinput.Model{login, pass}}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Вход") + "\n\n"
	out += "Логин:  " + m.inputs[0].View() + "\n"
	out += "Пароль: " + m.inputs[1].View() + "\n\n"
	if m.submitting {
		out += "Выполняется вход...\n\n"
	}
	out += helpStyle.Render("enter войти   tab поле   esc назад   ctrl+c выход")
	return out
}
