package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "имя"
	name.Focus()

	login := textinput.New()
	login.Placeholder = "логин"

	pass := textinput.New()
	pass.Placeholder = "пароль"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	repeat := textinput.New()
	repeat.Placeholder = "повтор пароля"
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '•'

	return registerModel{inputs: []textinput.Model{name, login, pass, repeat}}
}

func (m registerModel) View() string {
	out := titleStyle.Render("Регистрация") + "\n\n"
	out += "Имя:           " + m.inputs[0].View() + "\n"
	out += "Логин:         " + m.inputs[1].View() + "\n"
	out += "Пароль:        " + m.inputs[2].View() + "\n"
	out += "Повтор пароля: " + m.inputs[3].View() + "\n\n"
	if m.submitting {
		out += "Создаём аккаунт...\n\n"
	}
	out += helpStyle.Render("enter создать   tab поле   esc назад   ctrl+c выход")
	return out
}
