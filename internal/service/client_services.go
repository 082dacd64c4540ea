package service

import (
	"github.com/adenikin/go-note-keeper/internal/adapter"
	"github.com/adenikin/go-note-keeper/internal/crypto"
	"github.com/adenikin/go-note-keeper/internal/store"
)

type ClientServices struct {
	Cipher      crypto.ContentCipher
	AuthService ClientAuthService
	NoteService ClientNoteService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cipher crypto.ContentCipher) *ClientServices {
	localStore := storages.NoteRepository
	authSvc := NewClientAuthService(serverAdapter)
	noteSvc := NewClientNoteService(localStore, serverAdapter, cipher)
	syncSvc := NewClientSyncService(localStore, serverAdapter)

	return &ClientServices{
		Cipher:      cipher,
		AuthService: authSvc,
		NoteService: noteSvc,
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
