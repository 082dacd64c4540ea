package tui

import (
	"github.com/adenikin/go-note-keeper/models"
)

type authDoneMsg struct {
	user models.User
}

type syncDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	notes []models.Note
	err   error
}

// noteOpenedMsg carries a note whose body has been revealed (decrypted if it
// was passphrase-protected).
type noteOpenedMsg struct {
	note       models.Note
	passphrase string
	err        error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
