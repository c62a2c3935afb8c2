package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

type stubNoteRepo struct {
	notes  map[string]*domain.Note
	nextID int
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[string]*domain.Note)}
}

func cloneNote(n *domain.Note) *domain.Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func (r *stubNoteRepo) List(_ context.Context, ownerID string) ([]domain.Note, error) {
	out := make([]domain.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.nextID++
	created := cloneNote(note)
	created.ID = fmt.Sprintf("note_%d", r.nextID)
	r.notes[created.ID] = cloneNote(created)
	return created, nil
}

func (r *stubNoteRepo) FindByID(_ context.Context, ownerID, noteID string) (*domain.Note, error) {
	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return nil, domain.ErrNoteNotFound
	}
	return cloneNote(n), nil
}

func (r *stubNoteRepo) Update(_ context.Context, ownerID, noteID, title, text string, modifiedAt time.Time) (*domain.Note, error) {
	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return nil, domain.ErrNoteNotFound
	}
	n.Title = title
	n.Text = text
	n.ModifiedAt = modifiedAt
	return cloneNote(n), nil
}

func (r *stubNoteRepo) Delete(_ context.Context, ownerID, noteID string) error {
	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}

func (r *stubNoteRepo) SearchByTitle(_ context.Context, ownerID, query string) ([]domain.Note, error) {
	out := make([]domain.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID && strings.Contains(strings.ToLower(n.Title), strings.ToLower(query)) {
			out = append(out, *n)
		}
	}
	return out, nil
}

type stubIdemStore struct {
	keys map[string]string
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{keys: make(map[string]string)}
}

func (s *stubIdemStore) Get(_ context.Context, ownerID, key string) (string, bool, error) {
	id, ok := s.keys[ownerID+":"+key]
	return id, ok, nil
}

func (s *stubIdemStore) Save(_ context.Context, ownerID, key, noteID string) error {
	s.keys[ownerID+":"+key] = noteID
	return nil
}

func newTestNoteService(repo *stubNoteRepo) *NoteService {
	return NewNoteService(repo, newStubIdemStore(), zerolog.Nop())
}

func TestNoteService_Create_RoundTrip(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)

	note, err := svc.Create(context.Background(), ports.CreateNoteInput{
		OwnerID: "acc_1", Title: "T", Text: "X",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("expected note id to be assigned")
	}
	if note.OwnerID != "acc_1" {
		t.Fatalf("unexpected owner: %s", note.OwnerID)
	}
	if note.CreatedAt.IsZero() || !note.CreatedAt.Equal(note.ModifiedAt) {
		t.Fatalf("expected createdAt == modifiedAt on create, got %v / %v", note.CreatedAt, note.ModifiedAt)
	}

	notes, err := svc.List(context.Background(), "acc_1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "T" || notes[0].Text != "X" {
		t.Fatalf("unexpected list contents: %+v", notes)
	}
}

func TestNoteService_Create_Validation(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	cases := []struct {
		name    string
		title   string
		text    string
		wantErr error
	}{
		{"empty title", "", "body", domain.ErrInvalidNote},
		{"empty text", "title", "", domain.ErrInvalidNote},
		{"title too long", strings.Repeat("a", 51), "body", domain.ErrInvalidNote},
		{"text too long", "title", strings.Repeat("a", 301), domain.ErrInvalidNote},
		{"title at limit", strings.Repeat("a", 50), "body", nil},
		{"text at limit", "title", strings.Repeat("a", 300), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_1", Title: tc.title, Text: tc.text})
			if err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNoteService_Update_PreservesCreatedAt(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_1", Title: "before", Text: "old"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(ctx, ports.UpdateNoteInput{
		OwnerID: "acc_1", NoteID: created.ID, Title: "after", Text: "new",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "after" || updated.Text != "new" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed on update: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if !updated.ModifiedAt.After(updated.CreatedAt) {
		t.Fatalf("expected modifiedAt > createdAt, got %v / %v", updated.ModifiedAt, updated.CreatedAt)
	}
}

func TestNoteService_OwnershipIsolation(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_a", Title: "private", Text: "mine"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Account B must see A's note as nonexistent on every path.
	if _, err := svc.Update(ctx, ports.UpdateNoteInput{
		OwnerID: "acc_b", NoteID: note.ID, Title: "stolen", Text: "gotcha",
	}); err != domain.ErrNoteNotFound {
		t.Fatalf("expected ErrNoteNotFound on cross-owner update, got %v", err)
	}
	if err := svc.Delete(ctx, "acc_b", note.ID); err != domain.ErrNoteNotFound {
		t.Fatalf("expected ErrNoteNotFound on cross-owner delete, got %v", err)
	}

	others, err := svc.List(ctx, "acc_b")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("account B sees foreign notes: %+v", others)
	}

	found, err := svc.Search(ctx, "acc_b", "private")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("search leaked foreign notes: %+v", found)
	}

	// And A's note is untouched by the failed mutations.
	mine, err := svc.List(ctx, "acc_a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "private" {
		t.Fatalf("owner's note was mutated: %+v", mine)
	}
}

func TestNoteService_Search(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_1", Title: "Groceries", Text: "Milk, eggs"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_1", Title: "Work", Text: "Standup notes"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := svc.Search(ctx, "acc_1", "groc")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 1 || found[0].Title != "Groceries" {
		t.Fatalf("case-insensitive substring search failed: %+v", found)
	}

	if _, err := svc.Search(ctx, "acc_1", ""); err != domain.ErrMissingQuery {
		t.Fatalf("expected ErrMissingQuery, got %v", err)
	}
	if _, err := svc.Search(ctx, "acc_1", "   "); err != domain.ErrMissingQuery {
		t.Fatalf("expected ErrMissingQuery for blank query, got %v", err)
	}
}

func TestNoteService_Delete(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Create(ctx, ports.CreateNoteInput{OwnerID: "acc_1", Title: "temp", Text: "gone soon"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, "acc_1", note.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "acc_1", note.ID); err != domain.ErrNoteNotFound {
		t.Fatalf("expected ErrNoteNotFound on second delete, got %v", err)
	}
}

func TestNoteService_IdempotentCreate(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, ports.CreateNoteInput{
		OwnerID: "acc_1", Title: "once", Text: "only", IdemKey: "req-42",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	replay, err := svc.Create(ctx, ports.CreateNoteInput{
		OwnerID: "acc_1", Title: "once", Text: "only", IdemKey: "req-42",
	})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if replay.ID != first.ID {
		t.Fatalf("replay created a new note: %s != %s", replay.ID, first.ID)
	}

	notes, _ := svc.List(ctx, "acc_1")
	if len(notes) != 1 {
		t.Fatalf("expected a single note after replay, got %d", len(notes))
	}

	// Same key from another owner must not leak the first owner's note.
	foreign, err := svc.Create(ctx, ports.CreateNoteInput{
		OwnerID: "acc_2", Title: "once", Text: "only", IdemKey: "req-42",
	})
	if err != nil {
		t.Fatalf("foreign create failed: %v", err)
	}
	if foreign.ID == first.ID {
		t.Fatalf("idempotency key leaked across owners")
	}
}
