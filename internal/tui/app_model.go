package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adenikin/go-note-keeper/internal/service"
	"github.com/adenikin/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	form     formNoteModel

	userID        int64
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
	resultUserID  int64
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(services.Cipher),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, userID int64) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.userID = userID
	m.currentScreen = screenList
	m.list.userID = userID
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadList()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultUserID = msg.user.UserID
		return m, tea.Quit
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.notes = msg.notes
		if m.list.idx >= len(m.list.notes) {
			m.list.idx = len(m.list.notes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case noteOpenedMsg:
		m.detail.unlocking = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrCannotDecrypt) {
				m.showErrorf("Неверная парольная фраза")
			} else {
				m.showErrorf(humanizeServerUnavailableError(msg.err))
			}
			return m, nil
		}
		m.detail.locked = false
		m.detail.content = msg.note.Content
		m.detail.passphrase = msg.passphrase
		return m, nil
	case syncDoneMsg:
		m.list.syncing = false
		if msg.err != nil {
			m.showErrorf("Сервер недоступен, синхронизация будет выполнена позже")
		}
		return m, m.cmdLoadList()
	case noteSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		m.list.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNext(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrev(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.register.inputs[0].Value())
			login := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || login == "" || pass == "" {
				m.showErrorf("Имя, логин и пароль обязательны")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.User{
				Name:     name,
				Login:    login,
				Password: pass,
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.notes)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			note, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = newDetailModel(note, m.services.Cipher.IsEncryptedContent(note.Content))
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newItem):
			m.form = newFormNoteModel(nil, "", "")
			m.currentScreen = screenForm
		case key.Matches(msg, keys.edit):
			note, ok := m.list.current()
			if !ok {
				return m, nil
			}
			// защищённую заметку сначала нужно открыть
			if m.services.Cipher.IsEncryptedContent(note.Content) {
				m.detail = newDetailModel(note, true)
				m.currentScreen = screenDetail
				return m, nil
			}
			m.form = newFormNoteModel(&note, note.Content, "")
			m.currentScreen = screenForm
		case key.Matches(msg, keys.delete):
			note, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = note.Title
			m.pendingDelete = note.ClientSideID
		case key.Matches(msg, keys.sync):
			if m.list.syncing {
				return m, nil
			}
			m.list.syncing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.detail.locked {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.currentScreen = screenList
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				pass := m.detail.passInput.Value()
				if pass == "" {
					m.showErrorf("Введите парольную фразу")
					return m, nil
				}
				m.detail.unlocking = true
				return m, m.cmdOpenNote(m.detail.note.ClientSideID, pass)
			}
		}

		var cmd tea.Cmd
		m.detail.passInput, cmd = m.detail.passInput.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.form = newFormNoteModel(&note, m.detail.content, m.detail.passphrase)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.note.Title
		m.pendingDelete = m.detail.note.ClientSideID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.content)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.setFocus((m.form.focus + 1) % formFocusCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.setFocus((m.form.focus - 1 + formFocusCount) % formFocusCount)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			title := strings.TrimSpace(m.form.title.Value())
			content := m.form.content.Value()
			pass := m.form.passphrase.Value()
			if title == "" {
				m.showErrorf("Заголовок обязателен")
				return m, nil
			}
			if pass != "" {
				if ok, reason := m.services.NoteService.ValidatePassphrase(pass); !ok {
					// предупреждение, но не запрет
					m.form.warning = reason
				}
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateNote(m.form.original, title, content, pass)
			}
			return m, m.cmdCreateNote(title, content, pass)
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFocusTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case formFocusContent:
		m.form.content, cmd = m.form.content.Update(msg)
	case formFocusPassphrase:
		m.form.passphrase, cmd = m.form.passphrase.Update(msg)
		if ok, reason := m.services.NoteService.ValidatePassphrase(m.form.passphrase.Value()); !ok && m.form.passphrase.Value() != "" {
			m.form.warning = reason
		} else {
			m.form.warning = ""
		}
	}
	return m, cmd
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		loggedIn, err := auth.Login(ctx, user)
		if err != nil {
			return noteSavedMsg{err: err}
		}
		return authDoneMsg{user: loggedIn}
	}
}

func (m appModel) cmdRegisterAndLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if _, err := auth.Register(ctx, user); err != nil {
			return noteSavedMsg{err: err}
		}
		loggedIn, err := auth.Login(ctx, models.User{Login: user.Login, Password: user.Password})
		if err != nil {
			return noteSavedMsg{err: err}
		}
		return authDoneMsg{user: loggedIn}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID
	return func() tea.Msg {
		notes, err := svc.GetAll(ctx, userID)
		return listLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	userID := m.userID
	return func() tea.Msg {
		err := svc.FullSync(ctx, userID)
		return syncDoneMsg{err: err}
	}
}

func (m appModel) cmdOpenNote(clientSideID, passphrase string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID
	return func() tea.Msg {
		note, err := svc.Get(ctx, clientSideID, userID, passphrase)
		return noteOpenedMsg{note: note, passphrase: passphrase, err: err}
	}
}

func (m appModel) cmdCreateNote(title, content, passphrase string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID
	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, title, content, passphrase)
		return noteSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateNote(original models.Note, title, content, passphrase string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		note := original
		note.Title = title
		note.Content = content
		err := svc.Update(ctx, note, passphrase)
		return noteSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteNote(clientSideID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID
	return func() tea.Msg {
		err := svc.Delete(ctx, clientSideID, userID)
		return noteDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrev(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
