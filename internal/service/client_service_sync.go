package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/adenikin/go-note-keeper/internal/adapter"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/models"
)

type clientSyncService struct {
	localStore store.LocalNoteRepository
	adapter    adapter.ServerAdapter
	planner    SyncService

	mu          sync.RWMutex
	serverState map[string]models.NoteState
}

func NewClientSyncService(localStore store.LocalNoteRepository, serverAdapter adapter.ServerAdapter) ClientSyncService {
	return &clientSyncService{
		localStore:  localStore,
		adapter:     serverAdapter,
		planner:     NewSyncService(),
		serverState: make(map[string]models.NoteState),
	}
}

func (s *clientSyncService) FullSync(ctx context.Context, userID int64) error {
	serverStates, err := s.adapter.GetServerStates(ctx, userID)
	if err != nil {
		return fmt.Errorf("get server states: %w", err)
	}

	clientStates, err := s.localStore.GetAllStates(ctx, userID)
	if err != nil {
		return fmt.Errorf("get local states: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, serverStates, clientStates)
	if err != nil {
		return fmt.Errorf("build sync plan: %w", err)
	}

	idx := make(map[string]models.NoteState, len(serverStates))
	for _, st := range serverStates {
		idx[st.ClientSideID] = st
	}
	s.mu.Lock()
	s.serverState = idx
	s.mu.Unlock()

	if err = s.ExecutePlan(ctx, plan, userID); err != nil {
		return fmt.Errorf("execute sync plan: %w", err)
	}

	return nil
}

func (s *clientSyncService) ExecutePlan(ctx context.Context, plan models.SyncPlan, userID int64) error {
	if len(plan.Download) > 0 {
		ids := collectIDs(plan.Download)
		notes, err := s.adapter.Fetch(ctx, models.FetchRequest{UserID: userID, ClientSideIDs: ids})
		if err != nil {
			return fmt.Errorf("fetch notes in plan: %w", err)
		}
		batch := make([]*models.Note, 0, len(notes))
		for i := range notes {
			note := notes[i]
			batch = append(batch, &note)
		}
		if err = s.localStore.SaveNotes(ctx, userID, batch...); err != nil {
			return fmt.Errorf("save fetched notes locally: %w", err)
		}
	}

	if len(plan.Upload) > 0 {
		payload := make([]*models.Note, 0, len(plan.Upload))
		for _, st := range plan.Upload {
			note, err := s.localStore.GetNote(ctx, st.ClientSideID, userID)
			if err != nil {
				return fmt.Errorf("get local upload note %s: %w", st.ClientSideID, err)
			}
			n := note
			payload = append(payload, &n)
		}
		if err := s.adapter.Upload(ctx, models.UploadRequest{UserID: userID, Notes: payload}); err != nil {
			return fmt.Errorf("upload notes in sync plan: %w", err)
		}
	}

	for _, st := range plan.Update {
		if err := s.updateServer(ctx, st.ClientSideID, userID); err != nil {
			return err
		}
	}

	for _, st := range plan.DeleteClient {
		if err := s.localStore.DeleteNote(ctx, st.ClientSideID, userID); err != nil {
			return fmt.Errorf("delete on client for %s: %w", st.ClientSideID, err)
		}
	}

	for _, st := range plan.DeleteServer {
		if err := s.deleteServer(ctx, st.ClientSideID, userID); err != nil {
			return err
		}
	}

	return nil
}

func (s *clientSyncService) updateServer(ctx context.Context, clientSideID string, userID int64) error {
	note, err := s.localStore.GetNote(ctx, clientSideID, userID)
	if err != nil {
		return fmt.Errorf("load local note for update %s: %w", clientSideID, err)
	}

	title := note.Title
	content := note.Content
	hash := note.Hash
	req := models.UpdateRequest{
		NoteUpdates: []models.NoteUpdate{{
			ClientSideID: note.ClientSideID,
			UserID:       note.UserID,
			Title:        &title,
			Content:      &content,
			Hash:         &hash,
			Version:      s.serverVersion(clientSideID, note.Version),
		}},
	}

	err = s.adapter.Update(ctx, req)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("update server note %s: %w", clientSideID, err)
	}

	return s.refreshConflict(ctx, userID, clientSideID)
}

func (s *clientSyncService) deleteServer(ctx context.Context, clientSideID string, userID int64) error {
	req := models.DeleteRequest{UserID: userID, ClientSideIDs: []string{clientSideID}}

	err := s.adapter.Delete(ctx, req)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		return nil
	}

	return fmt.Errorf("delete server note %s: %w", clientSideID, err)
}

// refreshConflict replaces the local copy with the server copy after a
// version conflict. Server wins: the local edit is discarded.
func (s *clientSyncService) refreshConflict(ctx context.Context, userID int64, clientSideID string) error {
	req := models.FetchRequest{UserID: userID, ClientSideIDs: []string{clientSideID}}
	notes, err := s.adapter.Fetch(ctx, req)
	if err != nil {
		return fmt.Errorf("fetch conflict note %s: %w", clientSideID, err)
	}
	if len(notes) == 0 {
		return nil
	}

	batch := make([]*models.Note, 0, len(notes))
	for i := range notes {
		note := notes[i]
		batch = append(batch, &note)
	}
	if err = s.localStore.SaveNotes(ctx, userID, batch...); err != nil {
		return fmt.Errorf("save conflict note %s: %w", clientSideID, err)
	}
	return nil
}

// serverVersion returns the version the server last reported for the note,
// falling back to the local version minus one when the note was never part
// of a sync cycle.
func (s *clientSyncService) serverVersion(clientSideID string, fallback int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.serverState[clientSideID]; ok {
		return st.Version
	}
	if fallback > 0 {
		return fallback - 1
	}
	return 0
}

func collectIDs(states []models.NoteState) []string {
	ids := make([]string, 0, len(states))
	for _, st := range states {
		ids = append(ids, st.ClientSideID)
	}
	return ids
}
